package mocks

import (
	context "context"

	api "github.com/copp1723/lane-google-sub002/internal/http/api"
	mock "github.com/stretchr/testify/mock"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Create(ctx context.Context, callerID, name, customerID string) (*api.AccountSchema, error) {
	args := m.Called(ctx, callerID, name, customerID)

	var resp *api.AccountSchema
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.AccountSchema)
	}
	return resp, args.Error(1)
}

func (m *MockAccountService) Get(ctx context.Context, callerID, accountID string) (*api.AccountSchema, error) {
	args := m.Called(ctx, callerID, accountID)

	var resp *api.AccountSchema
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.AccountSchema)
	}
	return resp, args.Error(1)
}

func (m *MockAccountService) ListForUser(ctx context.Context, callerID string) ([]api.AccountSchema, error) {
	args := m.Called(ctx, callerID)

	var resp []api.AccountSchema
	if args.Get(0) != nil {
		resp = args.Get(0).([]api.AccountSchema)
	}
	return resp, args.Error(1)
}

func (m *MockAccountService) SetMemberRole(ctx context.Context, callerID, accountID, userID, role string) (*api.AccountMember, error) {
	args := m.Called(ctx, callerID, accountID, userID, role)

	var resp *api.AccountMember
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.AccountMember)
	}
	return resp, args.Error(1)
}

func (m *MockAccountService) SetAutoPause(ctx context.Context, callerID, accountID string, enabled bool) error {
	args := m.Called(ctx, callerID, accountID, enabled)
	return args.Error(0)
}

func NewMockAccountService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountService {
	m := &MockAccountService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
