package mocks

import (
	context "context"

	api "github.com/copp1723/lane-google-sub002/internal/http/api"
	mock "github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	args := m.Called(ctx, email, password)

	var resp *api.LoginResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.LoginResponse)
	}
	return resp, args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, email, name, password string) (*api.UserSchema, error) {
	args := m.Called(ctx, email, name, password)

	var resp *api.UserSchema
	if args.Get(0) != nil {
		resp = args.Get(0).(*api.UserSchema)
	}
	return resp, args.Error(1)
}

func NewMockAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthService {
	m := &MockAuthService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
