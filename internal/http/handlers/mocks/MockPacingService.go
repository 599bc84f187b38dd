package mocks

import (
	context "context"

	api "github.com/copp1723/lane-google-sub002/internal/http/api"
	mock "github.com/stretchr/testify/mock"
)

type MockPacingService struct {
	mock.Mock
}

func (m *MockPacingService) Summary(ctx context.Context, callerID, accountID string) (*api.PacingSummaryResponse, error) {
	args := m.Called(ctx, callerID, accountID)

	var resp *api.PacingSummaryResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.PacingSummaryResponse)
	}
	return resp, args.Error(1)
}

func NewMockPacingService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPacingService {
	m := &MockPacingService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
