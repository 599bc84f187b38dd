package performance_test

import (
	"context"
	"testing"
	"time"

	"github.com/copp1723/lane-google-sub002/internal/ads"
	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/copp1723/lane-google-sub002/internal/service/mocks"
	"github.com/copp1723/lane-google-sub002/internal/service/performance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// fakeAdsClient returns canned daily metrics for one customer.
type fakeAdsClient struct {
	metrics []ads.DailyMetrics
}

func (f *fakeAdsClient) DailyMetrics(ctx context.Context, customerID string, since time.Time) ([]ads.DailyMetrics, error) {
	return f.metrics, nil
}

func (f *fakeAdsClient) PauseCampaign(ctx context.Context, customerID, campaignID string) error {
	return nil
}

func (f *fakeAdsClient) ResumeCampaign(ctx context.Context, customerID, campaignID string) error {
	return nil
}

func (f *fakeAdsClient) Ping(ctx context.Context) error { return nil }

func strPtr(s string) *string { return &s }

func TestCollector_RunOnce_UpsertsLinkedCampaigns(t *testing.T) {
	ctx := context.Background()

	mockAccounts := mocks.NewAccountLister(t)
	mockCampaigns := mocks.NewLinkedCampaignLister(t)
	mockSnapshots := mocks.NewSnapshotWriter(t)

	day := time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)
	adsClient := &fakeAdsClient{metrics: []ads.DailyMetrics{
		{CampaignID: "999", Date: day, Spend: decimal.NewFromInt(42), Impressions: 1000, Clicks: 50, Conversions: 5},
		{CampaignID: "unknown-external", Date: day, Spend: decimal.NewFromInt(7)},
	}}

	mockAccounts.On("ListAll", ctx).Return([]*models.Account{
		{ID: "acc1", GoogleCustomerID: "123-456-7890"},
	}, nil).Once()
	mockCampaigns.On("ListLinked", ctx, "acc1").Return([]*models.Campaign{
		{ID: "c1", AccountID: "acc1", ExternalID: strPtr("999")},
	}, nil).Once()

	// Only the metric matching a linked campaign is stored.
	mockSnapshots.On("Upsert", ctx, mock.MatchedBy(func(s *models.SpendSnapshot) bool {
		return s.CampaignID == "c1" && s.Day.Equal(day) &&
			s.Spend.Equal(decimal.NewFromInt(42)) && s.Clicks == 50
	})).Return(nil).Once()

	c := performance.NewCollector(mockAccounts, mockCampaigns, mockSnapshots, adsClient,
		sl.NewDiscardLogger(), time.Minute, 3)

	assert.NoError(t, c.RunOnce(ctx))
}

func TestCollector_RunOnce_SkipsAccountsWithoutLinkedCampaigns(t *testing.T) {
	ctx := context.Background()

	mockAccounts := mocks.NewAccountLister(t)
	mockCampaigns := mocks.NewLinkedCampaignLister(t)
	mockSnapshots := mocks.NewSnapshotWriter(t)

	mockAccounts.On("ListAll", ctx).Return([]*models.Account{
		{ID: "acc1", GoogleCustomerID: "123-456-7890"},
	}, nil).Once()
	mockCampaigns.On("ListLinked", ctx, "acc1").Return([]*models.Campaign{}, nil).Once()

	c := performance.NewCollector(mockAccounts, mockCampaigns, mockSnapshots, ads.NewStub(),
		sl.NewDiscardLogger(), time.Minute, 3)

	// No metrics pulled, nothing upserted.
	assert.NoError(t, c.RunOnce(ctx))
}
