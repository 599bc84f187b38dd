package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Campaign struct {
	ID            string           `db:"id"`
	AccountID     string           `db:"account_id"`
	ExternalID    *string          `db:"external_id"`
	Name          string           `db:"name"`
	Objective     string           `db:"objective"`
	Channel       string           `db:"channel"`
	Status        string           `db:"status"`
	DailyBudget   *decimal.Decimal `db:"daily_budget"`
	MonthlyBudget *decimal.Decimal `db:"monthly_budget"`
	Targeting     *string          `db:"targeting"`
	PausedBy      *string          `db:"paused_by"`
	CreatedBy     string           `db:"created_by"`
	CreatedAt     *time.Time       `db:"created_at"`
	UpdatedAt     *time.Time       `db:"updated_at"`
}

// CampaignStatusCount backs the monitoring status breakdown.
type CampaignStatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}
