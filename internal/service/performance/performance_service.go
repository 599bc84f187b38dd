package performance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/copp1723/lane-google-sub002/internal/cache"
	"github.com/copp1723/lane-google-sub002/internal/http/api"
	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/copp1723/lane-google-sub002/internal/service"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TotalsReader
type TotalsReader interface {
	TotalsByAccount(ctx context.Context, accountID string, since time.Time) ([]*models.CampaignSpendTotals, error)
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

type PerformanceService struct {
	totals TotalsReader
	roles  RoleGetter
	cache  SummaryCache
	log    *slog.Logger
}

func NewPerformanceService(totals TotalsReader, roles RoleGetter, summaryCache SummaryCache, log *slog.Logger) *PerformanceService {
	return &PerformanceService{
		totals: totals,
		roles:  roles,
		cache:  summaryCache,
		log:    log,
	}
}

const (
	defaultDays = 30
	maxDays     = 365
)

// Summary aggregates spend snapshots over the trailing day range and derives
// the dashboard metrics (CTR, CPC, CPA, conversion rate).
func (s *PerformanceService) Summary(ctx context.Context, callerID, accountID string, days int) (*api.PerformanceSummaryResponse, error) {
	role, err := s.roles.GetMemberRole(ctx, accountID, callerID)
	if err != nil {
		return nil, err
	}
	if !service.RoleAtLeast(role, service.RoleViewer) {
		return nil, service.ErrForbidden
	}

	if days <= 0 {
		days = defaultDays
	}
	if days > maxDays {
		days = maxDays
	}

	key := fmt.Sprintf("performance:%s:%d", accountID, days)
	if s.cache != nil {
		var cached api.PerformanceSummaryResponse
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn("performance summary cache read failed", sl.Err(err))
		}
	}

	now := time.Now()
	totals, err := s.totals.TotalsByAccount(ctx, accountID, now.AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}

	resp := &api.PerformanceSummaryResponse{
		AccountID:   accountID,
		Days:        days,
		Campaigns:   make([]api.PerformanceRow, 0, len(totals)),
		GeneratedAt: now,
	}

	spend := decimal.Zero
	var impressions, clicks, conversions int64
	for _, t := range totals {
		resp.Campaigns = append(resp.Campaigns, api.PerformanceRow{
			CampaignID:   t.CampaignID,
			CampaignName: t.CampaignName,
			Spend:        t.Spend.StringFixed(2),
			Impressions:  t.Impressions,
			Clicks:       t.Clicks,
			Conversions:  t.Conversions,
		})
		spend = spend.Add(t.Spend)
		impressions += t.Impressions
		clicks += t.Clicks
		conversions += t.Conversions
	}

	resp.Totals = deriveTotals(spend, impressions, clicks, conversions)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, resp); err != nil {
			s.log.Warn("performance summary cache write failed", sl.Err(err))
		}
	}

	return resp, nil
}

func deriveTotals(spend decimal.Decimal, impressions, clicks, conversions int64) api.PerformanceTotals {
	totals := api.PerformanceTotals{
		Spend:       spend.StringFixed(2),
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		CPC:         "0.00",
		CPA:         "0.00",
	}

	if impressions > 0 {
		totals.CTR = float64(clicks) / float64(impressions)
	}
	if clicks > 0 {
		totals.CPC = spend.Div(decimal.NewFromInt(clicks)).StringFixed(2)
		totals.ConversionRate = float64(conversions) / float64(clicks)
	}
	if conversions > 0 {
		totals.CPA = spend.Div(decimal.NewFromInt(conversions)).StringFixed(2)
	}

	return totals
}
