package mocks

import (
	context "context"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type UserProvider struct {
	mock.Mock
}

func (m *UserProvider) Create(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserProvider) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)

	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func NewUserProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserProvider {
	m := &UserProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
