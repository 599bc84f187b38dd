package repo

import (
	"context"
	"database/sql"
	"time"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/copp1723/lane-google-sub002/internal/lib"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/jmoiron/sqlx"
)

type PacingRepository interface {
	Record(ctx context.Context, decision *models.PacingDecision) error
	LastRunAt(ctx context.Context, accountID string) (*time.Time, error)
}

type PacingRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewPacingRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *PacingRepo {
	return &PacingRepo{
		db:     db,
		getter: c,
	}
}

func (r *PacingRepo) Record(ctx context.Context, decision *models.PacingDecision) error {
	const op = "pacing_repo.Record"

	query := `
		INSERT INTO pacing_decisions (
			id, campaign_id, month_to_date, projected, pacing_ratio,
			classification, action, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW());
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		decision.ID,
		decision.CampaignID,
		decision.MonthToDate,
		decision.Projected,
		decision.PacingRatio,
		decision.Classification,
		decision.Action,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *PacingRepo) LastRunAt(ctx context.Context, accountID string) (*time.Time, error) {
	const op = "pacing_repo.LastRunAt"

	query := `
		SELECT MAX(d.created_at)
		FROM pacing_decisions d
		JOIN campaigns c ON c.id = d.campaign_id
		WHERE c.account_id = $1;
	`

	var lastRun sql.NullTime
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &lastRun, query, accountID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	if !lastRun.Valid {
		return nil, nil
	}

	return &lastRun.Time, nil
}
