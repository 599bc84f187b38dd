package mocks

import (
	context "context"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type AccountLister struct {
	mock.Mock
}

func (m *AccountLister) ListAll(ctx context.Context) ([]*models.Account, error) {
	args := m.Called(ctx)

	var accounts []*models.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]*models.Account)
	}
	return accounts, args.Error(1)
}

func (m *AccountLister) ListMembers(ctx context.Context, accountID string) ([]*models.Membership, error) {
	args := m.Called(ctx, accountID)

	var members []*models.Membership
	if args.Get(0) != nil {
		members = args.Get(0).([]*models.Membership)
	}
	return members, args.Error(1)
}

func NewAccountLister(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountLister {
	m := &AccountLister{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
