package mocks

import (
	context "context"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type AccountProvider struct {
	mock.Mock
}

func (m *AccountProvider) Create(ctx context.Context, account *models.Account) (string, error) {
	args := m.Called(ctx, account)
	return args.String(0), args.Error(1)
}

func (m *AccountProvider) GetById(ctx context.Context, accountID string) (*models.Account, error) {
	args := m.Called(ctx, accountID)

	var account *models.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*models.Account)
	}
	return account, args.Error(1)
}

func (m *AccountProvider) ListForUser(ctx context.Context, userID string) ([]*models.Account, error) {
	args := m.Called(ctx, userID)

	var accounts []*models.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]*models.Account)
	}
	return accounts, args.Error(1)
}

func (m *AccountProvider) SetAutoPause(ctx context.Context, accountID string, enabled bool) error {
	args := m.Called(ctx, accountID, enabled)
	return args.Error(0)
}

func NewAccountProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountProvider {
	m := &AccountProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
