package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"unsub-site/internal/core/domain"
	"unsub-site/internal/core/port"
)

// DefaultMaxTokenAttempts bounds token generation when inserts keep hitting
// the token unique index.
const DefaultMaxTokenAttempts = 5

// SubscriptionUseCase implements port.SubscriptionUseCase on top of a
// port.SubscriptionRepository. It holds no locks; concurrent correctness is
// delegated to the repository's unique indexes and row atomicity.
type SubscriptionUseCase struct {
	repo port.SubscriptionRepository

	// maxTokenAttempts is the number of tokens tried before giving up with
	// port.ErrResourceExhausted.
	maxTokenAttempts int
	newToken         func() (string, error)
	now              func() time.Time
}

// NewSubscriptionUseCase creates a usecase backed by repo.
func NewSubscriptionUseCase(repo port.SubscriptionRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{
		repo:             repo,
		maxTokenAttempts: DefaultMaxTokenAttempts,
		newToken:         domain.GenerateToken,
		now:              time.Now,
	}
}

// ResolveOrCreate returns the subscription for (email, campaignID), creating
// a subscribed record when none exists. An existing record is returned
// unchanged. If a concurrent request wins the insert, its record is returned.
func (u *SubscriptionUseCase) ResolveOrCreate(ctx context.Context, email string, campaignID *string) (*domain.Subscription, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", port.ErrInvalidInput)
	}
	campaignID = domain.NormalizeCampaignID(campaignID)

	sub, err := u.repo.FindByIdentity(ctx, email, campaignID)
	if err == nil {
		return sub, nil
	}
	if !errors.Is(err, port.ErrNotFound) {
		return nil, fmt.Errorf("find subscription: %w", err)
	}

	now := u.timestamp()
	for attempt := 0; attempt < u.maxTokenAttempts; attempt++ {
		token, err := u.newToken()
		if err != nil {
			return nil, fmt.Errorf("generate token: %w", err)
		}
		sub = &domain.Subscription{
			ID:           uuid.New(),
			Email:        email,
			CampaignID:   campaignID,
			Token:        token,
			IsSubscribed: true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		err = u.repo.Insert(ctx, sub)
		switch {
		case err == nil:
			return sub, nil
		case errors.Is(err, port.ErrDuplicateToken):
			continue
		case errors.Is(err, port.ErrDuplicateIdentity):
			// lost the race for this identity; the winner's row is the answer
			existing, err := u.repo.FindByIdentity(ctx, email, campaignID)
			if err != nil {
				return nil, fmt.Errorf("refetch subscription: %w", err)
			}
			return existing, nil
		default:
			return nil, fmt.Errorf("insert subscription: %w", err)
		}
	}
	return nil, fmt.Errorf("%w: %d token collisions", port.ErrResourceExhausted, u.maxTokenAttempts)
}

// ApplyAction sets the subscription flag of the record bound to token. The
// update time always advances, also when the flag already had the requested
// value. Nothing is written when the token or the action is rejected.
func (u *SubscriptionUseCase) ApplyAction(ctx context.Context, token string, action domain.Action) (*domain.Subscription, error) {
	sub, err := u.findByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !action.Valid() {
		return nil, fmt.Errorf("%w: %q", port.ErrInvalidAction, action)
	}

	updated := *sub
	updated.IsSubscribed = action.Subscribed()
	updated.UpdatedAt = u.nextUpdatedAt(sub.UpdatedAt)
	if err = u.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update subscription: %w", err)
	}
	return &updated, nil
}

// Subscribe resolves the subscription for (email, campaignID) and returns
// its management view.
func (u *SubscriptionUseCase) Subscribe(ctx context.Context, email string, campaignID *string) (*port.ManageView, error) {
	sub, err := u.ResolveOrCreate(ctx, email, campaignID)
	if err != nil {
		return nil, err
	}
	return u.view(ctx, sub)
}

// Manage returns the management view of the subscription bound to token.
func (u *SubscriptionUseCase) Manage(ctx context.Context, token string) (*port.ManageView, error) {
	sub, err := u.findByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return u.view(ctx, sub)
}

// Healthy pings the repository.
func (u *SubscriptionUseCase) Healthy(ctx context.Context) error {
	return u.repo.Ping(ctx)
}

func (u *SubscriptionUseCase) findByToken(ctx context.Context, token string) (*domain.Subscription, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", port.ErrNotFound)
	}
	sub, err := u.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find subscription by token: %w", err)
	}
	return sub, nil
}

// view attaches campaign wording. A campaign without configuration is not
// an error; the page falls back to generic wording.
func (u *SubscriptionUseCase) view(ctx context.Context, sub *domain.Subscription) (*port.ManageView, error) {
	v := &port.ManageView{Subscription: *sub}
	if sub.CampaignID == nil {
		return v, nil
	}
	cfg, err := u.repo.FindCampaignConfig(ctx, *sub.CampaignID)
	switch {
	case err == nil:
		v.Campaign = cfg
	case !errors.Is(err, port.ErrNotFound):
		return nil, fmt.Errorf("find campaign config: %w", err)
	}
	return v, nil
}

// timestamp returns the current time at the precision both stores keep.
func (u *SubscriptionUseCase) timestamp() time.Time {
	return u.now().UTC().Truncate(time.Microsecond)
}

// nextUpdatedAt returns a time strictly after prev.
func (u *SubscriptionUseCase) nextUpdatedAt(prev time.Time) time.Time {
	now := u.timestamp()
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	return now
}
