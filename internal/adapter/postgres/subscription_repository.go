package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"unsub-site/internal/core/domain"
	"unsub-site/internal/core/port"
)

const uniqueViolation = "23505"

// Names of the unique indexes created by the migrations. They decide which
// port error a unique violation maps to.
const (
	tokenIndex           = "subscriptions_token_key"
	identityIndex        = "subscriptions_identity_key"
	defaultIdentityIndex = "subscriptions_default_identity_key"
	campaignIndex        = "campaign_configs_campaign_id_key"
)

const subscriptionColumns = `id, email, campaign_id, token, is_subscribed, created_at, updated_at`

// SubscriptionRepository implements port.SubscriptionRepository using
// pgxpool for PostgreSQL.
type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriptionRepository returns a new repository instance.
func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

// FindByToken returns the subscription bound to token.
func (r *SubscriptionRepository) FindByToken(ctx context.Context, token string) (*domain.Subscription, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE token = $1`, token)
	return scanSubscription(row)
}

// FindByIdentity returns the subscription for (email, campaignID). IS NOT
// DISTINCT FROM makes a NULL campaign match only NULL.
func (r *SubscriptionRepository) FindByIdentity(ctx context.Context, email string, campaignID *string) (*domain.Subscription, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+subscriptionColumns+`
        FROM subscriptions
        WHERE email = $1 AND campaign_id IS NOT DISTINCT FROM $2::text`, email, campaignID)
	return scanSubscription(row)
}

// Insert stores a new subscription.
func (r *SubscriptionRepository) Insert(ctx context.Context, sub *domain.Subscription) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO subscriptions (`+subscriptionColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		sub.ID, sub.Email, sub.CampaignID, sub.Token, sub.IsSubscribed, sub.CreatedAt, sub.UpdatedAt)
	if err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

// Update persists the subscription flag and update time.
func (r *SubscriptionRepository) Update(ctx context.Context, sub *domain.Subscription) error {
	tag, err := r.pool.Exec(ctx, `UPDATE subscriptions SET is_subscribed = $1, updated_at = $2 WHERE token = $3`,
		sub.IsSubscribed, sub.UpdatedAt, sub.Token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// FindCampaignConfig returns the wording of a campaign.
func (r *SubscriptionRepository) FindCampaignConfig(ctx context.Context, campaignID string) (*domain.CampaignConfig, error) {
	var c domain.CampaignConfig
	err := r.pool.QueryRow(ctx, `SELECT id, campaign_id, header_text, footer_text, yes_text, no_text, created_at FROM campaign_configs WHERE campaign_id = $1`, campaignID).
		Scan(&c.ID, &c.CampaignID, &c.HeaderText, &c.FooterText, &c.YesText, &c.NoText, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}

// InsertCampaignConfig stores campaign wording and sets cfg.ID.
func (r *SubscriptionRepository) InsertCampaignConfig(ctx context.Context, cfg *domain.CampaignConfig) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO campaign_configs
    (campaign_id, header_text, footer_text, yes_text, no_text, created_at)
VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		cfg.CampaignID, cfg.HeaderText, cfg.FooterText, cfg.YesText, cfg.NoText, cfg.CreatedAt).Scan(&cfg.ID)
	if err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

// Ping checks connectivity of the pool.
func (r *SubscriptionRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func scanSubscription(row pgx.Row) (*domain.Subscription, error) {
	var s domain.Subscription
	err := row.Scan(&s.ID, &s.Email, &s.CampaignID, &s.Token, &s.IsSubscribed, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return &s, nil
}

// translateUniqueViolation maps unique index violations onto port errors and
// passes every other error through.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case tokenIndex:
		return fmt.Errorf("%w: %s", port.ErrDuplicateToken, pgErr.ConstraintName)
	case identityIndex, defaultIdentityIndex:
		return fmt.Errorf("%w: %s", port.ErrDuplicateIdentity, pgErr.ConstraintName)
	case campaignIndex:
		return fmt.Errorf("%w: %s", port.ErrCampaignExists, pgErr.ConstraintName)
	default:
		return err
	}
}
