package mocks

import (
	context "context"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type CampaignController struct {
	mock.Mock
}

func (m *CampaignController) ListActiveWithBudget(ctx context.Context, accountID string) ([]*models.Campaign, error) {
	args := m.Called(ctx, accountID)

	var campaigns []*models.Campaign
	if args.Get(0) != nil {
		campaigns = args.Get(0).([]*models.Campaign)
	}
	return campaigns, args.Error(1)
}

func (m *CampaignController) SetStatus(ctx context.Context, campaignID, status string, pausedBy *string) error {
	args := m.Called(ctx, campaignID, status, pausedBy)
	return args.Error(0)
}

func NewCampaignController(t interface {
	mock.TestingT
	Cleanup(func())
}) *CampaignController {
	m := &CampaignController{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
