package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

type RoleGetter struct {
	mock.Mock
}

func (m *RoleGetter) GetMemberRole(ctx context.Context, accountID, userID string) (string, error) {
	args := m.Called(ctx, accountID, userID)
	return args.String(0), args.Error(1)
}

func NewRoleGetter(t interface {
	mock.TestingT
	Cleanup(func())
}) *RoleGetter {
	m := &RoleGetter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
