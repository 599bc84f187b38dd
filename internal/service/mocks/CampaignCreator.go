package mocks

import (
	context "context"

	api "github.com/copp1723/lane-google-sub002/internal/http/api"
	campaignsvc "github.com/copp1723/lane-google-sub002/internal/service/campaign"
	mock "github.com/stretchr/testify/mock"
)

type CampaignCreator struct {
	mock.Mock
}

func (m *CampaignCreator) Create(ctx context.Context, callerID string, input campaignsvc.CreateInput) (*api.CampaignSchema, error) {
	args := m.Called(ctx, callerID, input)

	var resp *api.CampaignSchema
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.CampaignSchema)
	}
	return resp, args.Error(1)
}

func NewCampaignCreator(t interface {
	mock.TestingT
	Cleanup(func())
}) *CampaignCreator {
	m := &CampaignCreator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
