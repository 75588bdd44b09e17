// seed creates campaign wording and, optionally, a test subscription.
//
//	seed [--file campaigns.yaml] [--email test@example.com [--campaign id]]
//
// Without --file the built-in sample campaigns are used. Campaigns that
// already exist are skipped, so the command can be re-run safely.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"unsub-site/db/seed"
	"unsub-site/internal/adapter/usecase"
	"unsub-site/internal/app"
	"unsub-site/internal/config"
	"unsub-site/internal/db"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		file       string
		email      string
		campaignID string
		skipSeed   bool
	)
	flagSet := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flagSet.StringVarP(&file, "file", "f", "", "YAML file with campaign wording (default: built-in samples)")
	flagSet.StringVar(&email, "email", "", "create a test subscription for this address")
	flagSet.StringVar(&campaignID, "campaign", "", "campaign id of the test subscription")
	flagSet.BoolVar(&skipSeed, "skip-campaigns", false, "do not seed campaign wording")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.New(os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	baseURL := strings.TrimRight(cfg.HTTP.BaseURL, "/")

	if !skipSeed {
		data := seed.Campaigns
		if file != "" {
			if data, err = os.ReadFile(file); err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}
		}
		campaigns, err := db.LoadCampaigns(data)
		if err != nil {
			return err
		}
		created, err := db.SeedCampaigns(ctx, store.Repo, campaigns, logger)
		if err != nil {
			return err
		}
		logger.Info("campaign seeding finished",
			slog.Int("created", len(created)),
			slog.Int("total", len(campaigns)),
		)

		fmt.Println("Sample URLs to test:")
		for _, c := range campaigns {
			q := url.Values{"email": {"test@example.com"}, "id": {c.CampaignID}}
			fmt.Printf("%s/subscribe?%s\n", baseURL, q.Encode())
		}
	}

	if email != "" {
		var campaign *string
		if campaignID != "" {
			campaign = &campaignID
		}
		sub, err := usecase.NewSubscriptionUseCase(store.Repo).ResolveOrCreate(ctx, email, campaign)
		if err != nil {
			return fmt.Errorf("create test subscription: %w", err)
		}
		logger.Info("test subscription ready", slog.String("email", sub.Email))
		fmt.Printf("Management URL: %s/manage/%s\n", baseURL, sub.Token)
	}
	return nil
}
