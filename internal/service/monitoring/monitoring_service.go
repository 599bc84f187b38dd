package monitoring

import (
	"context"
	"time"

	"github.com/copp1723/lane-google-sub002/internal/ads"
	"github.com/copp1723/lane-google-sub002/internal/http/api"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/copp1723/lane-google-sub002/internal/service"
)

const (
	statusOK          = "ok"
	statusDegraded    = "degraded"
	statusUnavailable = "unavailable"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=StatusCounter
type StatusCounter interface {
	CountByStatus(ctx context.Context, accountID string) ([]*models.CampaignStatusCount, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RunReader
type RunReader interface {
	LastRunAt(ctx context.Context, accountID string) (*time.Time, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RoleGetter
type RoleGetter interface {
	GetMemberRole(ctx context.Context, accountID, userID string) (string, error)
}

// Pinger covers the database and cache health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

type MonitoringService struct {
	campaigns StatusCounter
	runs      RunReader
	roles     RoleGetter
	db        func(ctx context.Context) error
	cache     Pinger
	adsClient ads.Client
}

func NewMonitoringService(
	campaigns StatusCounter,
	runs RunReader,
	roles RoleGetter,
	dbPing func(ctx context.Context) error,
	cachePing Pinger,
	adsClient ads.Client,
) *MonitoringService {
	return &MonitoringService{
		campaigns: campaigns,
		runs:      runs,
		roles:     roles,
		db:        dbPing,
		cache:     cachePing,
		adsClient: adsClient,
	}
}

// Status reports the health of everything the account's dashboard depends on.
func (s *MonitoringService) Status(ctx context.Context, callerID, accountID string) (*api.MonitoringStatusResponse, error) {
	role, err := s.roles.GetMemberRole(ctx, accountID, callerID)
	if err != nil {
		return nil, err
	}
	if !service.RoleAtLeast(role, service.RoleViewer) {
		return nil, service.ErrForbidden
	}

	resp := &api.MonitoringStatusResponse{
		AccountID: accountID,
		Database:  statusOK,
		Cache:     statusOK,
		GoogleAds: statusOK,
		Campaigns: map[string]int{},
		CheckedAt: time.Now(),
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if s.db == nil || s.db(pingCtx) != nil {
		resp.Database = statusUnavailable
	}
	if s.cache == nil {
		resp.Cache = statusDegraded
	} else if s.cache.Ping(pingCtx) != nil {
		resp.Cache = statusUnavailable
	}
	if s.adsClient.Ping(pingCtx) != nil {
		resp.GoogleAds = statusUnavailable
	}

	counts, err := s.campaigns.CountByStatus(ctx, accountID)
	if err != nil {
		return nil, err
	}
	for _, c := range counts {
		resp.Campaigns[c.Status] = c.Count
	}

	lastRun, err := s.runs.LastRunAt(ctx, accountID)
	if err != nil {
		return nil, err
	}
	resp.LastPacingRun = lastRun

	return resp, nil
}
