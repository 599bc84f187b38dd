package mocks

import (
	context "context"

	api "github.com/copp1723/lane-google-sub002/internal/http/api"
	mock "github.com/stretchr/testify/mock"
)

type MockPerformanceService struct {
	mock.Mock
}

func (m *MockPerformanceService) Summary(ctx context.Context, callerID, accountID string, days int) (*api.PerformanceSummaryResponse, error) {
	args := m.Called(ctx, callerID, accountID, days)

	var resp *api.PerformanceSummaryResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.PerformanceSummaryResponse)
	}
	return resp, args.Error(1)
}

func NewMockPerformanceService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPerformanceService {
	m := &MockPerformanceService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
