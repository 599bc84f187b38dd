package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

type SummaryCache struct {
	mock.Mock
}

func (m *SummaryCache) Get(ctx context.Context, key string, v any) error {
	args := m.Called(ctx, key, v)
	return args.Error(0)
}

func (m *SummaryCache) Set(ctx context.Context, key string, v any) error {
	args := m.Called(ctx, key, v)
	return args.Error(0)
}

func NewSummaryCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *SummaryCache {
	m := &SummaryCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
