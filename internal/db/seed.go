package db

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"unsub-site/internal/core/domain"
	"unsub-site/internal/core/port"
)

type campaignSeed struct {
	CampaignID string `yaml:"campaign_id"`
	HeaderText string `yaml:"header_text"`
	FooterText string `yaml:"footer_text"`
	YesText    string `yaml:"yes_text"`
	NoText     string `yaml:"no_text"`
}

type seedFile struct {
	Campaigns []campaignSeed `yaml:"campaigns"`
}

// LoadCampaigns decodes a YAML seed document into campaign configurations.
// campaign_id, header_text and footer_text are required; yes_text and
// no_text default to "YES" and "NO".
func LoadCampaigns(data []byte) ([]domain.CampaignConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var file seedFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	seen := make(map[string]bool, len(file.Campaigns))
	out := make([]domain.CampaignConfig, 0, len(file.Campaigns))
	for i, c := range file.Campaigns {
		id := strings.TrimSpace(c.CampaignID)
		switch {
		case id == "":
			return nil, fmt.Errorf("campaign #%d: campaign_id is required", i+1)
		case seen[id]:
			return nil, fmt.Errorf("campaign %q listed twice", id)
		case strings.TrimSpace(c.HeaderText) == "":
			return nil, fmt.Errorf("campaign %q: header_text is required", id)
		case strings.TrimSpace(c.FooterText) == "":
			return nil, fmt.Errorf("campaign %q: footer_text is required", id)
		}
		seen[id] = true

		cfg := domain.CampaignConfig{
			CampaignID: id,
			HeaderText: c.HeaderText,
			FooterText: c.FooterText,
			YesText:    c.YesText,
			NoText:     c.NoText,
		}
		if cfg.YesText == "" {
			cfg.YesText = domain.DefaultYesText
		}
		if cfg.NoText == "" {
			cfg.NoText = domain.DefaultNoText
		}
		out = append(out, cfg)
	}
	return out, nil
}

// CampaignWriter is the part of the repository the seeder writes through.
type CampaignWriter interface {
	InsertCampaignConfig(ctx context.Context, cfg *domain.CampaignConfig) error
}

// SeedCampaigns inserts campaigns that do not exist yet and skips the rest.
// It returns the ids it created.
func SeedCampaigns(ctx context.Context, repo CampaignWriter, campaigns []domain.CampaignConfig, logger *slog.Logger) ([]string, error) {
	var created []string
	for _, c := range campaigns {
		c.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
		err := repo.InsertCampaignConfig(ctx, &c)
		switch {
		case err == nil:
			created = append(created, c.CampaignID)
			logger.Info("campaign created", slog.String("campaign_id", c.CampaignID))
		case errors.Is(err, port.ErrCampaignExists):
			logger.Info("campaign exists, skipping", slog.String("campaign_id", c.CampaignID))
		default:
			return created, fmt.Errorf("seed campaign %q: %w", c.CampaignID, err)
		}
	}
	return created, nil
}
