package ads

import (
	"context"
	"sync"
	"time"
)

// Stub stands in for the Google Ads API when no credentials are configured.
// Mutations are recorded in memory and metric pulls return nothing, so the
// rest of the system keeps working against locally seeded spend data.
type Stub struct {
	mu     sync.Mutex
	paused map[string]bool
}

func NewStub() *Stub {
	return &Stub{paused: make(map[string]bool)}
}

func (s *Stub) DailyMetrics(ctx context.Context, customerID string, since time.Time) ([]DailyMetrics, error) {
	return []DailyMetrics{}, nil
}

func (s *Stub) PauseCampaign(ctx context.Context, customerID, campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused[campaignID] = true
	return nil
}

func (s *Stub) ResumeCampaign(ctx context.Context, customerID, campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.paused, campaignID)
	return nil
}

func (s *Stub) Ping(ctx context.Context) error {
	return nil
}

// Paused reports whether the stub has recorded a pause for the campaign.
func (s *Stub) Paused(campaignID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused[campaignID]
}
