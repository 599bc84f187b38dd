package pacing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/copp1723/lane-google-sub002/internal/cache"
	"github.com/copp1723/lane-google-sub002/internal/http/api"
	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/copp1723/lane-google-sub002/internal/service"
	"github.com/copp1723/lane-google-sub002/internal/service/mocks"
	"github.com/copp1723/lane-google-sub002/internal/service/pacing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPacingService_Summary_Success(t *testing.T) {
	ctx := context.Background()

	mockCampaigns := mocks.NewCampaignLister(t)
	mockSpends := mocks.NewSpendReader(t)
	mockRoles := mocks.NewRoleGetter(t)

	budget := decimal.NewFromInt(3000)
	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleViewer, nil).Once()
	mockCampaigns.On("ListActiveWithBudget", ctx, "acc1").Return([]*models.Campaign{
		{ID: "c1", Name: "Spring Sale", Status: "active", MonthlyBudget: &budget},
	}, nil).Once()
	mockSpends.On("MonthToDate", ctx, "c1", mock.Anything, mock.Anything).
		Return(decimal.NewFromInt(1500), nil).Once()
	mockSpends.On("TrailingDaily", ctx, "c1", 7, mock.Anything).
		Return([]decimal.Decimal{decimal.NewFromInt(100)}, nil).Once()

	s := pacing.NewPacingService(mockCampaigns, mockSpends, mockRoles, nil, 7, sl.NewDiscardLogger())
	resp, err := s.Summary(ctx, "u1", "acc1")

	assert.NoError(t, err)
	assert.Equal(t, "acc1", resp.AccountID)
	assert.Len(t, resp.Campaigns, 1)
	assert.Equal(t, "3000.00", resp.MonthlyBudget)
	assert.Equal(t, "1500.00", resp.MonthToDate)
	assert.Equal(t, "c1", resp.Campaigns[0].CampaignID)
	assert.NotEmpty(t, resp.Campaigns[0].Classification)
}

func TestPacingService_Summary_CacheHit(t *testing.T) {
	ctx := context.Background()

	mockRoles := mocks.NewRoleGetter(t)
	mockCache := mocks.NewSummaryCache(t)

	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleAdmin, nil).Once()
	mockCache.On("Get", ctx, "pacing:acc1", mock.AnythingOfType("*api.PacingSummaryResponse")).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*api.PacingSummaryResponse)
			out.AccountID = "acc1"
			out.MonthlyBudget = "500.00"
		}).
		Return(nil).
		Once()

	// Campaign and spend readers must not be touched on a cache hit.
	s := pacing.NewPacingService(nil, nil, mockRoles, mockCache, 7, sl.NewDiscardLogger())
	resp, err := s.Summary(ctx, "u1", "acc1")

	assert.NoError(t, err)
	assert.Equal(t, "500.00", resp.MonthlyBudget)
}

func TestPacingService_Summary_CacheMissFallsThrough(t *testing.T) {
	ctx := context.Background()

	mockCampaigns := mocks.NewCampaignLister(t)
	mockRoles := mocks.NewRoleGetter(t)
	mockCache := mocks.NewSummaryCache(t)

	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleViewer, nil).Once()
	mockCache.On("Get", ctx, "pacing:acc1", mock.Anything).Return(cache.ErrMiss).Once()
	mockCampaigns.On("ListActiveWithBudget", ctx, "acc1").Return([]*models.Campaign{}, nil).Once()
	mockCache.On("Set", ctx, "pacing:acc1", mock.Anything).Return(nil).Once()

	s := pacing.NewPacingService(mockCampaigns, nil, mockRoles, mockCache, 7, sl.NewDiscardLogger())
	resp, err := s.Summary(ctx, "u1", "acc1")

	assert.NoError(t, err)
	assert.Empty(t, resp.Campaigns)
}

func TestPacingService_Summary_Forbidden(t *testing.T) {
	ctx := context.Background()

	mockRoles := mocks.NewRoleGetter(t)
	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return("", errors.New("no rows")).Once()

	s := pacing.NewPacingService(nil, nil, mockRoles, nil, 7, sl.NewDiscardLogger())
	resp, err := s.Summary(ctx, "u1", "acc1")

	assert.Nil(t, resp)
	assert.Error(t, err)
}
