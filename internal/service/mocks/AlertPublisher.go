package mocks

import (
	queue "github.com/copp1723/lane-google-sub002/internal/queue"
	mock "github.com/stretchr/testify/mock"
)

type AlertPublisher struct {
	mock.Mock
}

func (m *AlertPublisher) PublishAlert(alert queue.BudgetAlert) error {
	args := m.Called(alert)
	return args.Error(0)
}

func NewAlertPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *AlertPublisher {
	m := &AlertPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
