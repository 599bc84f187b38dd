package monitoring_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/copp1723/lane-google-sub002/internal/ads"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/copp1723/lane-google-sub002/internal/service"
	"github.com/copp1723/lane-google-sub002/internal/service/mocks"
	"github.com/copp1723/lane-google-sub002/internal/service/monitoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMonitoringService_Status_AllHealthy(t *testing.T) {
	ctx := context.Background()

	mockCampaigns := mocks.NewStatusCounter(t)
	mockRuns := mocks.NewRunReader(t)
	mockRoles := mocks.NewRoleGetter(t)
	mockCache := mocks.NewPinger(t)

	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleViewer, nil).Once()
	mockCache.On("Ping", mock.Anything).Return(nil).Once()
	mockCampaigns.On("CountByStatus", ctx, "acc1").Return([]*models.CampaignStatusCount{
		{Status: "active", Count: 3},
		{Status: "draft", Count: 1},
	}, nil).Once()

	lastRun := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	mockRuns.On("LastRunAt", ctx, "acc1").Return(&lastRun, nil).Once()

	dbPing := func(ctx context.Context) error { return nil }

	s := monitoring.NewMonitoringService(mockCampaigns, mockRuns, mockRoles, dbPing, mockCache, ads.NewStub())
	resp, err := s.Status(ctx, "u1", "acc1")

	assert.NoError(t, err)
	assert.Equal(t, "ok", resp.Database)
	assert.Equal(t, "ok", resp.Cache)
	assert.Equal(t, "ok", resp.GoogleAds)
	assert.Equal(t, 3, resp.Campaigns["active"])
	assert.Equal(t, 1, resp.Campaigns["draft"])
	assert.Equal(t, &lastRun, resp.LastPacingRun)
}

func TestMonitoringService_Status_DegradedWithoutCache(t *testing.T) {
	ctx := context.Background()

	mockCampaigns := mocks.NewStatusCounter(t)
	mockRuns := mocks.NewRunReader(t)
	mockRoles := mocks.NewRoleGetter(t)

	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return(service.RoleViewer, nil).Once()
	mockCampaigns.On("CountByStatus", ctx, "acc1").Return([]*models.CampaignStatusCount{}, nil).Once()
	mockRuns.On("LastRunAt", ctx, "acc1").Return(nil, nil).Once()

	dbPing := func(ctx context.Context) error { return errors.New("connection refused") }

	s := monitoring.NewMonitoringService(mockCampaigns, mockRuns, mockRoles, dbPing, nil, ads.NewStub())
	resp, err := s.Status(ctx, "u1", "acc1")

	assert.NoError(t, err)
	assert.Equal(t, "unavailable", resp.Database)
	assert.Equal(t, "degraded", resp.Cache)
	assert.Nil(t, resp.LastPacingRun)
}

func TestMonitoringService_Status_Forbidden(t *testing.T) {
	ctx := context.Background()

	mockRoles := mocks.NewRoleGetter(t)
	mockRoles.On("GetMemberRole", ctx, "acc1", "u1").Return("", errors.New("no rows")).Once()

	s := monitoring.NewMonitoringService(nil, nil, mockRoles, nil, nil, ads.NewStub())
	resp, err := s.Status(ctx, "u1", "acc1")

	assert.Nil(t, resp)
	assert.Error(t, err)
}
