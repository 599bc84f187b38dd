package performance

import (
	"context"
	"log/slog"
	"time"

	"github.com/copp1723/lane-google-sub002/internal/ads"
	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	"github.com/copp1723/lane-google-sub002/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AccountLister
type AccountLister interface {
	ListAll(ctx context.Context) ([]*models.Account, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=LinkedCampaignLister
type LinkedCampaignLister interface {
	ListLinked(ctx context.Context, accountID string) ([]*models.Campaign, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=SnapshotWriter
type SnapshotWriter interface {
	Upsert(ctx context.Context, snapshot *models.SpendSnapshot) error
}

// Collector periodically pulls daily campaign metrics from Google Ads and
// upserts spend snapshots. Recent days are re-pulled because Google Ads
// revises reported spend for up to a few days.
type Collector struct {
	accounts  AccountLister
	campaigns LinkedCampaignLister
	snapshots SnapshotWriter
	adsClient ads.Client
	log       *slog.Logger
	interval  time.Duration
	lookback  int
}

func NewCollector(
	accounts AccountLister,
	campaigns LinkedCampaignLister,
	snapshots SnapshotWriter,
	adsClient ads.Client,
	log *slog.Logger,
	interval time.Duration,
	lookback int,
) *Collector {
	return &Collector{
		accounts:  accounts,
		campaigns: campaigns,
		snapshots: snapshots,
		adsClient: adsClient,
		log:       log,
		interval:  interval,
		lookback:  lookback,
	}
}

func (c *Collector) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.log.Info("spend collector started", slog.Duration("interval", c.interval))

	for {
		select {
		case <-ctx.Done():
			c.log.Info("spend collector stopped")
			return
		case <-ticker.C:
			if err := c.RunOnce(ctx); err != nil {
				c.log.Error("spend collection failed", sl.Err(err))
			}
		}
	}
}

func (c *Collector) RunOnce(ctx context.Context) error {
	accounts, err := c.accounts.ListAll(ctx)
	if err != nil {
		return err
	}

	since := time.Now().AddDate(0, 0, -c.lookback)
	for _, account := range accounts {
		if err := c.collectAccount(ctx, account, since); err != nil {
			c.log.Error("account spend collection failed",
				slog.String("account_id", account.ID), sl.Err(err))
		}
	}
	return nil
}

func (c *Collector) collectAccount(ctx context.Context, account *models.Account, since time.Time) error {
	campaigns, err := c.campaigns.ListLinked(ctx, account.ID)
	if err != nil {
		return err
	}
	if len(campaigns) == 0 {
		return nil
	}

	byExternal := make(map[string]string, len(campaigns))
	for _, campaign := range campaigns {
		byExternal[*campaign.ExternalID] = campaign.ID
	}

	metrics, err := c.adsClient.DailyMetrics(ctx, account.GoogleCustomerID, since)
	if err != nil {
		return err
	}

	for _, m := range metrics {
		campaignID, ok := byExternal[m.CampaignID]
		if !ok {
			continue
		}
		snapshot := &models.SpendSnapshot{
			CampaignID:  campaignID,
			Day:         m.Date,
			Spend:       m.Spend,
			Impressions: m.Impressions,
			Clicks:      m.Clicks,
			Conversions: m.Conversions,
		}
		if err := c.snapshots.Upsert(ctx, snapshot); err != nil {
			return err
		}
	}
	return nil
}
