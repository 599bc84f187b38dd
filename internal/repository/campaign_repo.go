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

type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) (string, error)
	GetById(ctx context.Context, campaignID string) (*models.Campaign, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*models.Campaign, error)
	ListActiveWithBudget(ctx context.Context, accountID string) ([]*models.Campaign, error)
	ListLinked(ctx context.Context, accountID string) ([]*models.Campaign, error)
	Update(ctx context.Context, campaign *models.Campaign) error
	SetStatus(ctx context.Context, campaignID, status string, pausedBy *string) error
	Delete(ctx context.Context, campaignID string) error
	CountByStatus(ctx context.Context, accountID string) ([]*models.CampaignStatusCount, error)
}

type CampaignRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewCampaignRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *CampaignRepo {
	return &CampaignRepo{
		db:     db,
		getter: c,
	}
}

func (r *CampaignRepo) Create(ctx context.Context, campaign *models.Campaign) (string, error) {
	const op = "campaign_repo.Create"

	query := `
		INSERT INTO campaigns (
			id, account_id, external_id, name, objective, channel, status,
			daily_budget, monthly_budget, targeting, created_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id;
	`

	var campaignID string
	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(
		ctx,
		query,
		campaign.ID,
		campaign.AccountID,
		campaign.ExternalID,
		campaign.Name,
		campaign.Objective,
		campaign.Channel,
		campaign.Status,
		campaign.DailyBudget,
		campaign.MonthlyBudget,
		campaign.Targeting,
		campaign.CreatedBy,
	).Scan(&campaignID)
	if err != nil {
		return "", lib.Err(op, err)
	}

	return campaignID, nil
}

func (r *CampaignRepo) GetById(ctx context.Context, campaignID string) (*models.Campaign, error) {
	const op = "campaign_repo.GetById"

	query := `
		SELECT id, account_id, external_id, name, objective, channel, status,
		       daily_budget, monthly_budget, targeting, paused_by, created_by,
		       created_at, updated_at
		FROM campaigns
		WHERE id = $1;
	`

	var campaign models.Campaign
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &campaign, query, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &campaign, nil
}

func (r *CampaignRepo) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*models.Campaign, error) {
	const op = "campaign_repo.ListByAccount"

	query := `
		SELECT id, account_id, external_id, name, objective, channel, status,
		       daily_budget, monthly_budget, targeting, paused_by, created_by,
		       created_at, updated_at
		FROM campaigns
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`

	var campaigns []*models.Campaign
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &campaigns, query, accountID, limit, offset)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Campaign{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return campaigns, nil
}

func (r *CampaignRepo) ListActiveWithBudget(ctx context.Context, accountID string) ([]*models.Campaign, error) {
	const op = "campaign_repo.ListActiveWithBudget"

	query := `
		SELECT id, account_id, external_id, name, objective, channel, status,
		       daily_budget, monthly_budget, targeting, paused_by, created_by,
		       created_at, updated_at
		FROM campaigns
		WHERE account_id = $1
		  AND monthly_budget IS NOT NULL
		  AND (status = 'active' OR (status = 'paused' AND paused_by = 'pacer'));
	`

	var campaigns []*models.Campaign
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &campaigns, query, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Campaign{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return campaigns, nil
}

// ListLinked returns campaigns bound to a Google Ads campaign id, which is
// what the metrics collector can pull spend for.
func (r *CampaignRepo) ListLinked(ctx context.Context, accountID string) ([]*models.Campaign, error) {
	const op = "campaign_repo.ListLinked"

	query := `
		SELECT id, account_id, external_id, name, objective, channel, status,
		       daily_budget, monthly_budget, targeting, paused_by, created_by,
		       created_at, updated_at
		FROM campaigns
		WHERE account_id = $1 AND external_id IS NOT NULL;
	`

	var campaigns []*models.Campaign
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &campaigns, query, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Campaign{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return campaigns, nil
}

func (r *CampaignRepo) Update(ctx context.Context, campaign *models.Campaign) error {
	const op = "campaign_repo.Update"

	query := `
		UPDATE campaigns
		SET name = $1, objective = $2, channel = $3, daily_budget = $4,
		    monthly_budget = $5, targeting = $6, updated_at = NOW()
		WHERE id = $7;
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		campaign.Name,
		campaign.Objective,
		campaign.Channel,
		campaign.DailyBudget,
		campaign.MonthlyBudget,
		campaign.Targeting,
		campaign.ID,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *CampaignRepo) SetStatus(ctx context.Context, campaignID, status string, pausedBy *string) error {
	const op = "campaign_repo.SetStatus"

	query := `
		UPDATE campaigns
		SET status = $1, paused_by = $2, updated_at = NOW()
		WHERE id = $3;
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, status, pausedBy, campaignID)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *CampaignRepo) Delete(ctx context.Context, campaignID string) error {
	const op = "campaign_repo.Delete"

	query := `DELETE FROM campaigns WHERE id = $1`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, campaignID)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *CampaignRepo) CountByStatus(ctx context.Context, accountID string) ([]*models.CampaignStatusCount, error) {
	const op = "campaign_repo.CountByStatus"

	query := `
		SELECT status, COUNT(*) AS count
		FROM campaigns
		WHERE account_id = $1
		GROUP BY status;
	`

	var counts []*models.CampaignStatusCount
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &counts, query, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.CampaignStatusCount{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return counts, nil
}
