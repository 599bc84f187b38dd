package mocks

import (
	context "context"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type CampaignProvider struct {
	mock.Mock
}

func (m *CampaignProvider) Create(ctx context.Context, campaign *models.Campaign) (string, error) {
	args := m.Called(ctx, campaign)
	return args.String(0), args.Error(1)
}

func (m *CampaignProvider) GetById(ctx context.Context, campaignID string) (*models.Campaign, error) {
	args := m.Called(ctx, campaignID)

	var campaign *models.Campaign
	if args.Get(0) != nil {
		campaign = args.Get(0).(*models.Campaign)
	}
	return campaign, args.Error(1)
}

func (m *CampaignProvider) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*models.Campaign, error) {
	args := m.Called(ctx, accountID, limit, offset)

	var campaigns []*models.Campaign
	if args.Get(0) != nil {
		campaigns = args.Get(0).([]*models.Campaign)
	}
	return campaigns, args.Error(1)
}

func (m *CampaignProvider) Update(ctx context.Context, campaign *models.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *CampaignProvider) SetStatus(ctx context.Context, campaignID, status string, pausedBy *string) error {
	args := m.Called(ctx, campaignID, status, pausedBy)
	return args.Error(0)
}

func (m *CampaignProvider) Delete(ctx context.Context, campaignID string) error {
	args := m.Called(ctx, campaignID)
	return args.Error(0)
}

func NewCampaignProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *CampaignProvider {
	m := &CampaignProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
