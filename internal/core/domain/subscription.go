package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Subscription is the subscription state of one email address within one
// campaign scope. CampaignID is nil for the default scope. Token is the only
// credential needed to manage the record.
type Subscription struct {
	ID           uuid.UUID
	Email        string
	CampaignID   *string
	Token        string
	IsSubscribed bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeCampaignID trims id and maps an empty value to nil.
func NormalizeCampaignID(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SameCampaign reports whether two campaign ids denote the same scope.
func SameCampaign(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
