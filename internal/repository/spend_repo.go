package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/copp1723/lane-google-sub002/internal/lib"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type SpendRepository interface {
	Upsert(ctx context.Context, snapshot *models.SpendSnapshot) error
	MonthToDate(ctx context.Context, campaignID string, monthStart, now time.Time) (decimal.Decimal, error)
	TrailingDaily(ctx context.Context, campaignID string, days int, now time.Time) ([]decimal.Decimal, error)
	TotalsByAccount(ctx context.Context, accountID string, since time.Time) ([]*models.CampaignSpendTotals, error)
}

type SpendRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewSpendRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *SpendRepo {
	return &SpendRepo{
		db:     db,
		getter: c,
	}
}

func (r *SpendRepo) Upsert(ctx context.Context, snapshot *models.SpendSnapshot) error {
	const op = "spend_repo.Upsert"

	query := `
		INSERT INTO spend_snapshots (campaign_id, day, spend, impressions, clicks, conversions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (campaign_id, day) DO UPDATE SET
			spend = EXCLUDED.spend,
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			conversions = EXCLUDED.conversions;
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		snapshot.CampaignID,
		snapshot.Day,
		snapshot.Spend,
		snapshot.Impressions,
		snapshot.Clicks,
		snapshot.Conversions,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *SpendRepo) MonthToDate(ctx context.Context, campaignID string, monthStart, now time.Time) (decimal.Decimal, error) {
	const op = "spend_repo.MonthToDate"

	query := `
		SELECT COALESCE(SUM(spend), 0)
		FROM spend_snapshots
		WHERE campaign_id = $1 AND day >= $2 AND day <= $3;
	`

	var total decimal.Decimal
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &total, query, campaignID, monthStart, now)
	if err != nil {
		return decimal.Zero, lib.Err(op, err)
	}

	return total, nil
}

func (r *SpendRepo) TrailingDaily(ctx context.Context, campaignID string, days int, now time.Time) ([]decimal.Decimal, error) {
	const op = "spend_repo.TrailingDaily"

	query := `
		SELECT spend
		FROM spend_snapshots
		WHERE campaign_id = $1 AND day > $2 AND day <= $3
		ORDER BY day;
	`

	since := now.AddDate(0, 0, -days)

	var spends []decimal.Decimal
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &spends, query, campaignID, since, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []decimal.Decimal{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return spends, nil
}

func (r *SpendRepo) TotalsByAccount(ctx context.Context, accountID string, since time.Time) ([]*models.CampaignSpendTotals, error) {
	const op = "spend_repo.TotalsByAccount"

	query := `
		SELECT c.id AS campaign_id,
		       c.name AS campaign_name,
		       COALESCE(SUM(s.spend), 0) AS spend,
		       COALESCE(SUM(s.impressions), 0) AS impressions,
		       COALESCE(SUM(s.clicks), 0) AS clicks,
		       COALESCE(SUM(s.conversions), 0) AS conversions
		FROM campaigns c
		LEFT JOIN spend_snapshots s ON s.campaign_id = c.id AND s.day >= $2
		WHERE c.account_id = $1
		GROUP BY c.id, c.name
		ORDER BY spend DESC;
	`

	var totals []*models.CampaignSpendTotals
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &totals, query, accountID, since)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.CampaignSpendTotals{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return totals, nil
}
