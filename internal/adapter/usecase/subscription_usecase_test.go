package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"unsub-site/internal/core/domain"
	"unsub-site/internal/core/port"
	"unsub-site/internal/core/port/mocks"
)

func ptr(s string) *string { return &s }

// tokens returns a generator that yields values in order.
func tokens(values ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		v := values[i%len(values)]
		i++
		return v, nil
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestUseCase(t *testing.T) (*SubscriptionUseCase, *mocks.MockSubscriptionRepository) {
	repo := mocks.NewMockSubscriptionRepository(t)
	svc := NewSubscriptionUseCase(repo)
	return svc, repo
}

func TestResolveOrCreateReturnsExisting(t *testing.T) {
	svc, repo := newTestUseCase(t)
	existing := &domain.Subscription{
		ID:           uuid.New(),
		Email:        "a@x.com",
		CampaignID:   ptr("camp1"),
		Token:        "tok",
		IsSubscribed: false,
	}
	repo.EXPECT().
		FindByIdentity(mock.Anything, "a@x.com", ptr("camp1")).
		Return(existing, nil)

	got, err := svc.ResolveOrCreate(context.Background(), "a@x.com", ptr("camp1"))
	require.NoError(t, err)
	assert.Same(t, existing, got)
	assert.False(t, got.IsSubscribed, "existing status must not be reset")
}

func TestResolveOrCreateCreatesSubscribed(t *testing.T) {
	svc, repo := newTestUseCase(t)
	now := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC)
	svc.newToken = tokens("t1")
	svc.now = fixedClock(now)

	repo.EXPECT().
		FindByIdentity(mock.Anything, "u@test.com", ptr("newsletter-2024")).
		Return(nil, port.ErrNotFound)
	repo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("*domain.Subscription")).
		Return(nil)

	got, err := svc.ResolveOrCreate(context.Background(), "u@test.com", ptr("newsletter-2024"))
	require.NoError(t, err)
	assert.Equal(t, "t1", got.Token)
	assert.True(t, got.IsSubscribed)
	assert.Equal(t, "newsletter-2024", *got.CampaignID)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, now.Truncate(time.Microsecond), got.CreatedAt)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestResolveOrCreateNormalizesEmptyCampaign(t *testing.T) {
	svc, repo := newTestUseCase(t)
	existing := &domain.Subscription{Email: "a@x.com", Token: "tok"}
	repo.EXPECT().
		FindByIdentity(mock.Anything, "a@x.com", (*string)(nil)).
		Return(existing, nil)

	got, err := svc.ResolveOrCreate(context.Background(), "a@x.com", ptr("  "))
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
}

func TestResolveOrCreateRejectsEmptyEmail(t *testing.T) {
	svc, _ := newTestUseCase(t)
	for _, email := range []string{"", "   "} {
		_, err := svc.ResolveOrCreate(context.Background(), email, nil)
		assert.ErrorIs(t, err, port.ErrInvalidInput)
	}
}

func TestResolveOrCreateRetriesTokenCollision(t *testing.T) {
	svc, repo := newTestUseCase(t)
	svc.newToken = tokens("taken", "fresh")

	repo.EXPECT().
		FindByIdentity(mock.Anything, "a@x.com", (*string)(nil)).
		Return(nil, port.ErrNotFound)
	repo.EXPECT().
		Insert(mock.Anything, mock.MatchedBy(func(s *domain.Subscription) bool { return s.Token == "taken" })).
		Return(port.ErrDuplicateToken).
		Once()
	repo.EXPECT().
		Insert(mock.Anything, mock.MatchedBy(func(s *domain.Subscription) bool { return s.Token == "fresh" })).
		Return(nil).
		Once()

	got, err := svc.ResolveOrCreate(context.Background(), "a@x.com", nil)
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.Token)
}

func TestResolveOrCreateExhaustsTokenRetries(t *testing.T) {
	svc, repo := newTestUseCase(t)
	svc.newToken = tokens("taken")

	repo.EXPECT().
		FindByIdentity(mock.Anything, "a@x.com", (*string)(nil)).
		Return(nil, port.ErrNotFound)
	repo.EXPECT().
		Insert(mock.Anything, mock.Anything).
		Return(port.ErrDuplicateToken).
		Times(DefaultMaxTokenAttempts)

	_, err := svc.ResolveOrCreate(context.Background(), "a@x.com", nil)
	assert.ErrorIs(t, err, port.ErrResourceExhausted)
}

func TestResolveOrCreateReturnsRaceWinner(t *testing.T) {
	svc, repo := newTestUseCase(t)
	winner := &domain.Subscription{Email: "a@x.com", CampaignID: ptr("camp1"), Token: "winner", IsSubscribed: true}

	repo.EXPECT().
		FindByIdentity(mock.Anything, "a@x.com", ptr("camp1")).
		Return(nil, port.ErrNotFound).
		Once()
	repo.EXPECT().
		Insert(mock.Anything, mock.Anything).
		Return(port.ErrDuplicateIdentity).
		Once()
	repo.EXPECT().
		FindByIdentity(mock.Anything, "a@x.com", ptr("camp1")).
		Return(winner, nil).
		Once()

	got, err := svc.ResolveOrCreate(context.Background(), "a@x.com", ptr("camp1"))
	require.NoError(t, err)
	assert.Equal(t, "winner", got.Token)
}

func TestResolveOrCreatePropagatesStoreFailure(t *testing.T) {
	svc, repo := newTestUseCase(t)
	boom := errors.New("connection reset")
	repo.EXPECT().
		FindByIdentity(mock.Anything, "a@x.com", (*string)(nil)).
		Return(nil, boom)

	_, err := svc.ResolveOrCreate(context.Background(), "a@x.com", nil)
	assert.ErrorIs(t, err, boom)
}

func TestApplyActionUnknownToken(t *testing.T) {
	svc, repo := newTestUseCase(t)
	repo.EXPECT().
		FindByToken(mock.Anything, "nonexistent-token").
		Return(nil, port.ErrNotFound)

	_, err := svc.ApplyAction(context.Background(), "nonexistent-token", domain.ActionSubscribe)
	assert.ErrorIs(t, err, port.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestApplyActionEmptyToken(t *testing.T) {
	svc, _ := newTestUseCase(t)
	_, err := svc.ApplyAction(context.Background(), "", domain.ActionSubscribe)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestApplyActionInvalidAction(t *testing.T) {
	svc, repo := newTestUseCase(t)
	stamp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := &domain.Subscription{Token: "tok", IsSubscribed: true, UpdatedAt: stamp}
	repo.EXPECT().FindByToken(mock.Anything, "tok").Return(sub, nil)

	_, err := svc.ApplyAction(context.Background(), "tok", domain.Action("destroy"))
	assert.ErrorIs(t, err, port.ErrInvalidAction)
	assert.True(t, sub.IsSubscribed)
	assert.Equal(t, stamp, sub.UpdatedAt)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestApplyActionAdvancesUpdatedAt(t *testing.T) {
	svc, repo := newTestUseCase(t)
	frozen := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = fixedClock(frozen)

	stored := &domain.Subscription{Token: "tok", IsSubscribed: true, UpdatedAt: frozen}
	repo.EXPECT().
		FindByToken(mock.Anything, "tok").
		RunAndReturn(func(context.Context, string) (*domain.Subscription, error) {
			cp := *stored
			return &cp, nil
		})
	repo.EXPECT().
		Update(mock.Anything, mock.Anything).
		Run(func(_ context.Context, sub *domain.Subscription) {
			*stored = *sub
		}).
		Return(nil)

	first, err := svc.ApplyAction(context.Background(), "tok", domain.ActionUnsubscribe)
	require.NoError(t, err)
	assert.False(t, first.IsSubscribed)
	assert.True(t, first.UpdatedAt.After(frozen))

	second, err := svc.ApplyAction(context.Background(), "tok", domain.ActionSubscribe)
	require.NoError(t, err)
	assert.True(t, second.IsSubscribed)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestApplyActionUpdateFailureLeavesInputUntouched(t *testing.T) {
	svc, repo := newTestUseCase(t)
	stamp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := &domain.Subscription{Token: "tok", IsSubscribed: true, UpdatedAt: stamp}
	repo.EXPECT().FindByToken(mock.Anything, "tok").Return(sub, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(port.ErrNotFound)

	_, err := svc.ApplyAction(context.Background(), "tok", domain.ActionUnsubscribe)
	assert.ErrorIs(t, err, port.ErrNotFound)
	assert.True(t, sub.IsSubscribed)
	assert.Equal(t, stamp, sub.UpdatedAt)
}

func TestManageWithCampaignConfig(t *testing.T) {
	svc, repo := newTestUseCase(t)
	sub := &domain.Subscription{Token: "tok", CampaignID: ptr("promo-spring"), IsSubscribed: true}
	cfg := &domain.CampaignConfig{CampaignID: "promo-spring", HeaderText: "Spring Promotion Updates"}
	repo.EXPECT().FindByToken(mock.Anything, "tok").Return(sub, nil)
	repo.EXPECT().FindCampaignConfig(mock.Anything, "promo-spring").Return(cfg, nil)

	view, err := svc.Manage(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "Spring Promotion Updates", view.Wording().HeaderText)
}

func TestManageFallsBackToGenericWording(t *testing.T) {
	svc, repo := newTestUseCase(t)
	sub := &domain.Subscription{Token: "tok", CampaignID: ptr("unknown-campaign")}
	repo.EXPECT().FindByToken(mock.Anything, "tok").Return(sub, nil)
	repo.EXPECT().FindCampaignConfig(mock.Anything, "unknown-campaign").Return(nil, port.ErrNotFound)

	view, err := svc.Manage(context.Background(), "tok")
	require.NoError(t, err)
	assert.Nil(t, view.Campaign)
	assert.Equal(t, domain.DefaultHeaderText, view.Wording().HeaderText)
}

func TestManageWithoutCampaignSkipsConfigLookup(t *testing.T) {
	svc, repo := newTestUseCase(t)
	repo.EXPECT().FindByToken(mock.Anything, "tok").Return(&domain.Subscription{Token: "tok"}, nil)

	view, err := svc.Manage(context.Background(), "tok")
	require.NoError(t, err)
	assert.Nil(t, view.Campaign)
	repo.AssertNotCalled(t, "FindCampaignConfig", mock.Anything, mock.Anything)
}
