package mocks

import (
	context "context"
	time "time"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type TotalsReader struct {
	mock.Mock
}

func (m *TotalsReader) TotalsByAccount(ctx context.Context, accountID string, since time.Time) ([]*models.CampaignSpendTotals, error) {
	args := m.Called(ctx, accountID, since)

	var totals []*models.CampaignSpendTotals
	if args.Get(0) != nil {
		totals = args.Get(0).([]*models.CampaignSpendTotals)
	}
	return totals, args.Error(1)
}

func NewTotalsReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *TotalsReader {
	m := &TotalsReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
