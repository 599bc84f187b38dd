package mocks

import (
	context "context"

	api "github.com/copp1723/lane-google-sub002/internal/http/api"
	mock "github.com/stretchr/testify/mock"
)

type MockMonitoringService struct {
	mock.Mock
}

func (m *MockMonitoringService) Status(ctx context.Context, callerID, accountID string) (*api.MonitoringStatusResponse, error) {
	args := m.Called(ctx, callerID, accountID)

	var resp *api.MonitoringStatusResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.MonitoringStatusResponse)
	}
	return resp, args.Error(1)
}

func NewMockMonitoringService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMonitoringService {
	m := &MockMonitoringService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
