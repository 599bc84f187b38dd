package mocks

import (
	context "context"
	time "time"

	mock "github.com/stretchr/testify/mock"
)

type RunReader struct {
	mock.Mock
}

func (m *RunReader) LastRunAt(ctx context.Context, accountID string) (*time.Time, error) {
	args := m.Called(ctx, accountID)

	var at *time.Time
	if args.Get(0) != nil {
		at = args.Get(0).(*time.Time)
	}
	return at, args.Error(1)
}

func NewRunReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *RunReader {
	m := &RunReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
