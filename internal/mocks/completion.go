package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/pet-recipe/backend/internal/llm"
)

// MockCompletionClient is a mock implementation of the completion client
type MockCompletionClient struct {
	mock.Mock
}

// Complete mocks the Complete method
func (m *MockCompletionClient) Complete(ctx context.Context, req llm.CompletionRequest) (json.RawMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
