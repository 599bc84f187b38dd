package repo

import (
	"context"
	"database/sql"
	"errors"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/copp1723/lane-google-sub002/internal/lib"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/jmoiron/sqlx"
)

type BriefRepository interface {
	Create(ctx context.Context, brief *models.Brief) (string, error)
	GetById(ctx context.Context, briefID string) (*models.Brief, error)
}

type BriefRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewBriefRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *BriefRepo {
	return &BriefRepo{
		db:     db,
		getter: c,
	}
}

func (r *BriefRepo) Create(ctx context.Context, brief *models.Brief) (string, error) {
	const op = "brief_repo.Create"

	query := `
		INSERT INTO briefs (
			id, conversation_id, account_id, objective, audience,
			monthly_budget, channels, timeline, key_messages, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id;
	`

	var briefID string
	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(
		ctx,
		query,
		brief.ID,
		brief.ConversationID,
		brief.AccountID,
		brief.Objective,
		brief.Audience,
		brief.MonthlyBudget,
		brief.Channels,
		brief.Timeline,
		brief.KeyMessages,
	).Scan(&briefID)
	if err != nil {
		return "", lib.Err(op, err)
	}

	return briefID, nil
}

func (r *BriefRepo) GetById(ctx context.Context, briefID string) (*models.Brief, error) {
	const op = "brief_repo.GetById"

	query := `
		SELECT id, conversation_id, account_id, objective, audience,
		       monthly_budget, channels, timeline, key_messages, created_at
		FROM briefs
		WHERE id = $1;
	`

	var brief models.Brief
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &brief, query, briefID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &brief, nil
}
