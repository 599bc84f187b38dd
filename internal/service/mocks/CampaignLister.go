package mocks

import (
	context "context"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type CampaignLister struct {
	mock.Mock
}

func (m *CampaignLister) ListActiveWithBudget(ctx context.Context, accountID string) ([]*models.Campaign, error) {
	args := m.Called(ctx, accountID)

	var campaigns []*models.Campaign
	if args.Get(0) != nil {
		campaigns = args.Get(0).([]*models.Campaign)
	}
	return campaigns, args.Error(1)
}

func NewCampaignLister(t interface {
	mock.TestingT
	Cleanup(func())
}) *CampaignLister {
	m := &CampaignLister{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
