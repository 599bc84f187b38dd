package mocks

import (
	context "context"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type DecisionRecorder struct {
	mock.Mock
}

func (m *DecisionRecorder) Record(ctx context.Context, decision *models.PacingDecision) error {
	args := m.Called(ctx, decision)
	return args.Error(0)
}

func NewDecisionRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *DecisionRecorder {
	m := &DecisionRecorder{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
