package mocks

import (
	context "context"

	api "github.com/copp1723/lane-google-sub002/internal/http/api"
	campaignsvc "github.com/copp1723/lane-google-sub002/internal/service/campaign"
	mock "github.com/stretchr/testify/mock"
)

type MockCampaignService struct {
	mock.Mock
}

func (m *MockCampaignService) Create(ctx context.Context, callerID string, input campaignsvc.CreateInput) (*api.CampaignSchema, error) {
	args := m.Called(ctx, callerID, input)

	var resp *api.CampaignSchema
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.CampaignSchema)
	}
	return resp, args.Error(1)
}

func (m *MockCampaignService) Get(ctx context.Context, callerID, campaignID string) (*api.CampaignSchema, error) {
	args := m.Called(ctx, callerID, campaignID)

	var resp *api.CampaignSchema
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.CampaignSchema)
	}
	return resp, args.Error(1)
}

func (m *MockCampaignService) List(ctx context.Context, callerID, accountID string, limit, offset int) ([]api.CampaignSchema, error) {
	args := m.Called(ctx, callerID, accountID, limit, offset)

	var resp []api.CampaignSchema
	if args.Get(0) != nil {
		resp = args.Get(0).([]api.CampaignSchema)
	}
	return resp, args.Error(1)
}

func (m *MockCampaignService) Update(ctx context.Context, callerID, campaignID string, input campaignsvc.UpdateInput) (*api.CampaignSchema, error) {
	args := m.Called(ctx, callerID, campaignID, input)

	var resp *api.CampaignSchema
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.CampaignSchema)
	}
	return resp, args.Error(1)
}

func (m *MockCampaignService) Delete(ctx context.Context, callerID, campaignID string) error {
	args := m.Called(ctx, callerID, campaignID)
	return args.Error(0)
}

func (m *MockCampaignService) Transition(ctx context.Context, callerID, campaignID, action string) (*api.CampaignSchema, error) {
	args := m.Called(ctx, callerID, campaignID, action)

	var resp *api.CampaignSchema
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.CampaignSchema)
	}
	return resp, args.Error(1)
}

func NewMockCampaignService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCampaignService {
	m := &MockCampaignService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
