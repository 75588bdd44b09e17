package port

import (
	"context"

	"unsub-site/internal/core/domain"
)

// SubscriptionRepository defines the persistence layer for subscriptions and
// campaign wording. It is an outbound port in hexagonal architecture.
// Implementations must enforce token and identity uniqueness with unique
// indexes so that concurrent requests stay correct.
type SubscriptionRepository interface {
	// FindByToken returns the subscription bound to token or ErrNotFound.
	FindByToken(ctx context.Context, token string) (*domain.Subscription, error)
	// FindByIdentity returns the subscription for (email, campaignID) or
	// ErrNotFound. A nil campaignID only matches rows without a campaign.
	FindByIdentity(ctx context.Context, email string, campaignID *string) (*domain.Subscription, error)
	// Insert stores a new subscription. It returns ErrDuplicateToken or
	// ErrDuplicateIdentity when a unique index rejects the row.
	Insert(ctx context.Context, sub *domain.Subscription) error
	// Update persists IsSubscribed and UpdatedAt of an existing row, or
	// returns ErrNotFound.
	Update(ctx context.Context, sub *domain.Subscription) error

	// FindCampaignConfig returns campaign wording or ErrNotFound.
	FindCampaignConfig(ctx context.Context, campaignID string) (*domain.CampaignConfig, error)
	// InsertCampaignConfig stores campaign wording or returns
	// ErrCampaignExists.
	InsertCampaignConfig(ctx context.Context, cfg *domain.CampaignConfig) error

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}
