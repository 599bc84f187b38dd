package mocks

import (
	context "context"

	api "github.com/copp1723/lane-google-sub002/internal/http/api"
	mock "github.com/stretchr/testify/mock"
)

type MockBriefService struct {
	mock.Mock
}

func (m *MockBriefService) StartConversation(ctx context.Context, callerID, accountID, title string) (*api.ConversationSchema, error) {
	args := m.Called(ctx, callerID, accountID, title)

	var resp *api.ConversationSchema
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.ConversationSchema)
	}
	return resp, args.Error(1)
}

func (m *MockBriefService) Chat(ctx context.Context, callerID, convID, content string) (*api.ChatResponse, error) {
	args := m.Called(ctx, callerID, convID, content)

	var resp *api.ChatResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.ChatResponse)
	}
	return resp, args.Error(1)
}

func (m *MockBriefService) Generate(ctx context.Context, callerID, convID string) (*api.BriefSchema, error) {
	args := m.Called(ctx, callerID, convID)

	var resp *api.BriefSchema
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.BriefSchema)
	}
	return resp, args.Error(1)
}

func (m *MockBriefService) CreateCampaign(ctx context.Context, callerID, briefID string) (*api.CampaignSchema, error) {
	args := m.Called(ctx, callerID, briefID)

	var resp *api.CampaignSchema
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.CampaignSchema)
	}
	return resp, args.Error(1)
}

func NewMockBriefService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBriefService {
	m := &MockBriefService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
