package mocks

import (
	context "context"

	models "github.com/copp1723/lane-google-sub002/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type ConversationProvider struct {
	mock.Mock
}

func (m *ConversationProvider) Create(ctx context.Context, conv *models.Conversation) (string, error) {
	args := m.Called(ctx, conv)
	return args.String(0), args.Error(1)
}

func (m *ConversationProvider) GetById(ctx context.Context, convID string) (*models.Conversation, error) {
	args := m.Called(ctx, convID)

	var conv *models.Conversation
	if args.Get(0) != nil {
		conv = args.Get(0).(*models.Conversation)
	}
	return conv, args.Error(1)
}

func (m *ConversationProvider) AppendMessage(ctx context.Context, msg *models.ConversationMessage) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func (m *ConversationProvider) ListMessages(ctx context.Context, convID string) ([]*models.ConversationMessage, error) {
	args := m.Called(ctx, convID)

	var msgs []*models.ConversationMessage
	if args.Get(0) != nil {
		msgs = args.Get(0).([]*models.ConversationMessage)
	}
	return msgs, args.Error(1)
}

func NewConversationProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *ConversationProvider {
	m := &ConversationProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
