package pacing

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/copp1723/lane-google-sub002/internal/cache"
	"github.com/copp1723/lane-google-sub002/internal/http/api"
	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/copp1723/lane-google-sub002/internal/service"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=CampaignLister
type CampaignLister interface {
	ListActiveWithBudget(ctx context.Context, accountID string) ([]*models.Campaign, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=SpendReader
type SpendReader interface {
	MonthToDate(ctx context.Context, campaignID string, monthStart, now time.Time) (decimal.Decimal, error)
	TrailingDaily(ctx context.Context, campaignID string, days int, now time.Time) ([]decimal.Decimal, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RoleGetter
type RoleGetter interface {
	GetMemberRole(ctx context.Context, accountID, userID string) (string, error)
}

// SummaryCache is the slice of the Redis cache the summary path uses.
type SummaryCache interface {
	Get(ctx context.Context, key string, v any) error
	Set(ctx context.Context, key string, v any) error
}

type PacingService struct {
	campaigns CampaignLister
	spends    SpendReader
	roles     RoleGetter
	cache     SummaryCache
	window    int
	log       *slog.Logger
}

func NewPacingService(
	campaigns CampaignLister,
	spends SpendReader,
	roles RoleGetter,
	summaryCache SummaryCache,
	window int,
	log *slog.Logger,
) *PacingService {
	return &PacingService{
		campaigns: campaigns,
		spends:    spends,
		roles:     roles,
		cache:     summaryCache,
		window:    window,
		log:       log,
	}
}

// Summary evaluates every budgeted campaign in the account and returns
// per-campaign pacing rows plus account totals. Results are cached so the
// dashboard's polling does not recompute on every refresh.
func (s *PacingService) Summary(ctx context.Context, callerID, accountID string) (*api.PacingSummaryResponse, error) {
	role, err := s.roles.GetMemberRole(ctx, accountID, callerID)
	if err != nil {
		return nil, err
	}
	if !service.RoleAtLeast(role, service.RoleViewer) {
		return nil, service.ErrForbidden
	}

	if s.cache != nil {
		var cached api.PacingSummaryResponse
		if err := s.cache.Get(ctx, "pacing:"+accountID, &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn("pacing summary cache read failed", sl.Err(err))
		}
	}

	resp, err := s.build(ctx, accountID, time.Now())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, "pacing:"+accountID, resp); err != nil {
			s.log.Warn("pacing summary cache write failed", sl.Err(err))
		}
	}

	return resp, nil
}

func (s *PacingService) build(ctx context.Context, accountID string, now time.Time) (*api.PacingSummaryResponse, error) {
	campaigns, err := s.campaigns.ListActiveWithBudget(ctx, accountID)
	if err != nil {
		return nil, err
	}

	resp := &api.PacingSummaryResponse{
		AccountID:   accountID,
		Campaigns:   make([]api.PacingRow, 0, len(campaigns)),
		GeneratedAt: now,
	}

	totalBudget := decimal.Zero
	totalMTD := decimal.Zero
	totalProjected := decimal.Zero

	monthStart := MonthStart(now)
	for _, c := range campaigns {
		mtd, err := s.spends.MonthToDate(ctx, c.ID, monthStart, now)
		if err != nil {
			return nil, err
		}
		trailing, err := s.spends.TrailingDaily(ctx, c.ID, s.window, now)
		if err != nil {
			return nil, err
		}

		ev := Evaluate(*c.MonthlyBudget, mtd, trailing, now)

		resp.Campaigns = append(resp.Campaigns, api.PacingRow{
			CampaignID:     c.ID,
			CampaignName:   c.Name,
			Status:         c.Status,
			MonthlyBudget:  c.MonthlyBudget.StringFixed(2),
			MonthToDate:    mtd.StringFixed(2),
			Projected:      ev.Projected.StringFixed(2),
			PacingRatio:    ev.PacingRatio,
			Classification: ev.Classification,
			Action:         ev.Action,
		})

		totalBudget = totalBudget.Add(*c.MonthlyBudget)
		totalMTD = totalMTD.Add(mtd)
		totalProjected = totalProjected.Add(ev.Projected)
	}

	resp.MonthlyBudget = totalBudget.StringFixed(2)
	resp.MonthToDate = totalMTD.StringFixed(2)
	resp.Projected = totalProjected.StringFixed(2)

	return resp, nil
}
