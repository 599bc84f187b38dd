package mocks

import (
	context "context"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type UserGetter struct {
	mock.Mock
}

func (m *UserGetter) GetById(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)

	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func NewUserGetter(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserGetter {
	m := &UserGetter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
