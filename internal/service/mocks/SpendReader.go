package mocks

import (
	context "context"
	time "time"

	decimal "github.com/shopspring/decimal"
	mock "github.com/stretchr/testify/mock"
)

type SpendReader struct {
	mock.Mock
}

func (m *SpendReader) MonthToDate(ctx context.Context, campaignID string, monthStart, now time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, campaignID, monthStart, now)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *SpendReader) TrailingDaily(ctx context.Context, campaignID string, days int, now time.Time) ([]decimal.Decimal, error) {
	args := m.Called(ctx, campaignID, days, now)

	var daily []decimal.Decimal
	if args.Get(0) != nil {
		daily = args.Get(0).([]decimal.Decimal)
	}
	return daily, args.Error(1)
}

func NewSpendReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *SpendReader {
	m := &SpendReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
