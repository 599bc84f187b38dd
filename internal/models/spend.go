package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendSnapshot is one campaign-day of metrics pulled from Google Ads.
type SpendSnapshot struct {
	CampaignID  string          `db:"campaign_id"`
	Day         time.Time       `db:"day"`
	Spend       decimal.Decimal `db:"spend"`
	Impressions int64           `db:"impressions"`
	Clicks      int64           `db:"clicks"`
	Conversions int64           `db:"conversions"`
	CreatedAt   *time.Time      `db:"created_at"`
}

type CampaignSpendTotals struct {
	CampaignID   string          `db:"campaign_id"`
	CampaignName string          `db:"campaign_name"`
	Spend        decimal.Decimal `db:"spend"`
	Impressions  int64           `db:"impressions"`
	Clicks       int64           `db:"clicks"`
	Conversions  int64           `db:"conversions"`
}
