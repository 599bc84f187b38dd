package mocks

import (
	context "context"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type MemberProvider struct {
	mock.Mock
}

func (m *MemberProvider) UpsertMember(ctx context.Context, member *models.AccountUser) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MemberProvider) GetMemberRole(ctx context.Context, accountID, userID string) (string, error) {
	args := m.Called(ctx, accountID, userID)
	return args.String(0), args.Error(1)
}

func (m *MemberProvider) ListMembers(ctx context.Context, accountID string) ([]*models.Membership, error) {
	args := m.Called(ctx, accountID)

	var members []*models.Membership
	if args.Get(0) != nil {
		members = args.Get(0).([]*models.Membership)
	}
	return members, args.Error(1)
}

func NewMemberProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MemberProvider {
	m := &MemberProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
