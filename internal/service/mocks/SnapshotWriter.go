package mocks

import (
	context "context"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type SnapshotWriter struct {
	mock.Mock
}

func (m *SnapshotWriter) Upsert(ctx context.Context, snapshot *models.SpendSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func NewSnapshotWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *SnapshotWriter {
	m := &SnapshotWriter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
