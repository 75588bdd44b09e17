package port

import (
	"context"

	"unsub-site/internal/core/domain"
)

// SubscriptionUseCase defines the business operations exposed to inbound
// adapters. Mock implementations can be generated from this interface for
// testing.
type SubscriptionUseCase interface {
	// ResolveOrCreate finds the subscription for (email, campaignID) or
	// creates a subscribed one. Repeated calls never create duplicates or
	// reset the subscription flag. An empty email yields ErrInvalidInput.
	ResolveOrCreate(ctx context.Context, email string, campaignID *string) (*domain.Subscription, error)

	// ApplyAction sets the subscription flag of the record bound to token
	// and refreshes its update time. Unknown tokens yield ErrNotFound and
	// actions outside the vocabulary yield ErrInvalidAction; neither
	// mutates anything.
	ApplyAction(ctx context.Context, token string, action domain.Action) (*domain.Subscription, error)

	// Subscribe resolves the subscription and returns the management view
	// bound to its token.
	Subscribe(ctx context.Context, email string, campaignID *string) (*ManageView, error)

	// Manage returns the management view for token or ErrNotFound.
	Manage(ctx context.Context, token string) (*ManageView, error)

	// Healthy reports whether the backing store is reachable.
	Healthy(ctx context.Context) error
}

// ManageView is what the management page needs: the subscription and the
// wording to show. Campaign is nil when generic wording applies.
type ManageView struct {
	Subscription domain.Subscription
	Campaign     *domain.CampaignConfig
}

// Wording returns the campaign wording or the generic fallback.
func (v ManageView) Wording() domain.CampaignConfig {
	if v.Campaign == nil {
		return domain.GenericCampaignConfig()
	}
	return *v.Campaign
}
