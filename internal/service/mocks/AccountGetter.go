package mocks

import (
	context "context"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type AccountGetter struct {
	mock.Mock
}

func (m *AccountGetter) GetById(ctx context.Context, accountID string) (*models.Account, error) {
	args := m.Called(ctx, accountID)

	var account *models.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*models.Account)
	}
	return account, args.Error(1)
}

func NewAccountGetter(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountGetter {
	m := &AccountGetter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
