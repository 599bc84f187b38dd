package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PacingDecision is one evaluation of one campaign by the pacing loop.
type PacingDecision struct {
	ID             string          `db:"id"`
	CampaignID     string          `db:"campaign_id"`
	MonthToDate    decimal.Decimal `db:"month_to_date"`
	Projected      decimal.Decimal `db:"projected"`
	PacingRatio    float64         `db:"pacing_ratio"`
	Classification string          `db:"classification"`
	Action         string          `db:"action"`
	CreatedAt      *time.Time      `db:"created_at"`
}
