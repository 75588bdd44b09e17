// Package sqlite implements the subscription store on SQLite for local runs
// and tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"unsub-site/internal/core/domain"
	"unsub-site/internal/core/port"
)

const subscriptionColumns = `id, email, campaign_id, token, is_subscribed, created_at, updated_at`

// SubscriptionRepository implements port.SubscriptionRepository on a
// *sql.DB opened with the modernc sqlite driver. Timestamps are stored as
// unix microseconds.
type SubscriptionRepository struct {
	db *sql.DB
}

// NewSubscriptionRepository returns a repository on db. The schema must
// already be migrated.
func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func toMicros(t time.Time) int64 {
	return t.UTC().UnixMicro()
}

func fromMicros(v int64) time.Time {
	return time.UnixMicro(v).UTC()
}

// FindByToken returns the subscription bound to token.
func (r *SubscriptionRepository) FindByToken(ctx context.Context, token string) (*domain.Subscription, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE token = ?`, token)
	return scanSubscription(row)
}

// FindByIdentity returns the subscription for (email, campaignID). SQLite's
// IS operator treats two NULLs as equal.
func (r *SubscriptionRepository) FindByIdentity(ctx context.Context, email string, campaignID *string) (*domain.Subscription, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE email = ? AND campaign_id IS ?`, email, nullString(campaignID))
	return scanSubscription(row)
}

// Insert stores a new subscription.
func (r *SubscriptionRepository) Insert(ctx context.Context, sub *domain.Subscription) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO subscriptions (`+subscriptionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sub.ID.String(),
		sub.Email,
		nullString(sub.CampaignID),
		sub.Token,
		sub.IsSubscribed,
		toMicros(sub.CreatedAt),
		toMicros(sub.UpdatedAt),
	)
	if err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

// Update persists the subscription flag and update time.
func (r *SubscriptionRepository) Update(ctx context.Context, sub *domain.Subscription) error {
	res, err := r.db.ExecContext(ctx, `UPDATE subscriptions SET is_subscribed = ?, updated_at = ? WHERE token = ?`,
		sub.IsSubscribed, toMicros(sub.UpdatedAt), sub.Token)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	if n == 0 {
		return port.ErrNotFound
	}
	return nil
}

// FindCampaignConfig returns the wording of a campaign.
func (r *SubscriptionRepository) FindCampaignConfig(ctx context.Context, campaignID string) (*domain.CampaignConfig, error) {
	var (
		c         domain.CampaignConfig
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, `SELECT id, campaign_id, header_text, footer_text, yes_text, no_text, created_at
		FROM campaign_configs WHERE campaign_id = ?`, campaignID).
		Scan(&c.ID, &c.CampaignID, &c.HeaderText, &c.FooterText, &c.YesText, &c.NoText, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find campaign config: %w", err)
	}
	c.CreatedAt = fromMicros(createdAt)
	return &c, nil
}

// InsertCampaignConfig stores campaign wording and sets cfg.ID.
func (r *SubscriptionRepository) InsertCampaignConfig(ctx context.Context, cfg *domain.CampaignConfig) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO campaign_configs
		(campaign_id, header_text, footer_text, yes_text, no_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		cfg.CampaignID, cfg.HeaderText, cfg.FooterText, cfg.YesText, cfg.NoText, toMicros(cfg.CreatedAt))
	if err != nil {
		return translateUniqueViolation(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("campaign config id: %w", err)
	}
	cfg.ID = id
	return nil
}

// Ping checks that the database file is reachable.
func (r *SubscriptionRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func scanSubscription(row *sql.Row) (*domain.Subscription, error) {
	var (
		s          domain.Subscription
		campaignID sql.NullString
		createdAt  int64
		updatedAt  int64
	)
	err := row.Scan(&s.ID, &s.Email, &campaignID, &s.Token, &s.IsSubscribed, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan subscription: %w", err)
	}
	if campaignID.Valid {
		s.CampaignID = &campaignID.String
	}
	s.CreatedAt = fromMicros(createdAt)
	s.UpdatedAt = fromMicros(updatedAt)
	return &s, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// translateUniqueViolation maps unique index violations onto port errors.
// SQLite names the indexed columns in the message, which tells the token
// index apart from the identity indexes.
func translateUniqueViolation(err error) error {
	msg := strings.ToLower(err.Error())
	var sqliteErr *msqlite.Error
	constraint := errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqlite3lib.SQLITE_CONSTRAINT
	if !constraint && !strings.Contains(msg, "unique constraint failed") {
		return err
	}
	switch {
	case strings.Contains(msg, "subscriptions.token"):
		return fmt.Errorf("%w: %v", port.ErrDuplicateToken, err)
	case strings.Contains(msg, "subscriptions.email"):
		return fmt.Errorf("%w: %v", port.ErrDuplicateIdentity, err)
	case strings.Contains(msg, "campaign_configs.campaign_id"):
		return fmt.Errorf("%w: %v", port.ErrCampaignExists, err)
	default:
		return err
	}
}
