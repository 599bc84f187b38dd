package mocks

import (
	context "context"

	llm "github.com/copp1723/lane-google-sub002/internal/llm"
	mock "github.com/stretchr/testify/mock"
)

type LLMClient struct {
	mock.Mock
}

func (m *LLMClient) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

func NewLLMClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *LLMClient {
	m := &LLMClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
