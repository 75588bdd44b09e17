package port

import (
	"errors"

	"unsub-site/internal/core/domain"
)

var (
	// ErrInvalidInput reports a missing required field such as an empty email.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound reports that a token, identity or campaign does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrInvalidAction reports an action outside the accepted vocabulary.
	ErrInvalidAction = domain.ErrInvalidAction
	// ErrDuplicateToken is returned by repositories when a token is already
	// stored. The resolver retries with a fresh token.
	ErrDuplicateToken = errors.New("duplicate token")
	// ErrDuplicateIdentity is returned by repositories when another request
	// created the same (email, campaign) subscription first.
	ErrDuplicateIdentity = errors.New("duplicate subscription identity")
	// ErrResourceExhausted reports that token generation kept colliding.
	ErrResourceExhausted = errors.New("token retry budget exhausted")
	// ErrCampaignExists is returned when seeding an existing campaign id.
	ErrCampaignExists = errors.New("campaign config already exists")
)
