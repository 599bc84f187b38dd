package mocks

import (
	context "context"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type StatusCounter struct {
	mock.Mock
}

func (m *StatusCounter) CountByStatus(ctx context.Context, accountID string) ([]*models.CampaignStatusCount, error) {
	args := m.Called(ctx, accountID)

	var counts []*models.CampaignStatusCount
	if args.Get(0) != nil {
		counts = args.Get(0).([]*models.CampaignStatusCount)
	}
	return counts, args.Error(1)
}

func NewStatusCounter(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatusCounter {
	m := &StatusCounter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
