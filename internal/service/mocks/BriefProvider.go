package mocks

import (
	context "context"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type BriefProvider struct {
	mock.Mock
}

func (m *BriefProvider) Create(ctx context.Context, brief *models.Brief) (string, error) {
	args := m.Called(ctx, brief)
	return args.String(0), args.Error(1)
}

func (m *BriefProvider) GetById(ctx context.Context, briefID string) (*models.Brief, error) {
	args := m.Called(ctx, briefID)

	var brief *models.Brief
	if args.Get(0) != nil {
		brief = args.Get(0).(*models.Brief)
	}
	return brief, args.Error(1)
}

func NewBriefProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *BriefProvider {
	m := &BriefProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
