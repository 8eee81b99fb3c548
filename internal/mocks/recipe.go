package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/pet-recipe/backend/internal/types"
)

// MockRecipeGenerator is a mock implementation of the pet recipe generator
type MockRecipeGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockRecipeGenerator) Generate(ctx context.Context, age int, breed string, weight int, useMonths bool) (map[string]any, error) {
	args := m.Called(ctx, age, breed, weight, useMonths)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

// GenerateRecipe mocks the GenerateRecipe method
func (m *MockRecipeGenerator) GenerateRecipe(ctx context.Context, req types.RecipeRequest) (*types.PetRecipe, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PetRecipe), args.Error(1)
}
