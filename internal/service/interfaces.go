package service

import (
	"context"
	"encoding/json"

	"github.com/pageza/pet-recipe/backend/internal/llm"
	"github.com/pageza/pet-recipe/backend/internal/types"
)

// CompletionClient submits a prompt together with the schema its answer must
// follow and returns the decoded structured answer.
type CompletionClient interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (json.RawMessage, error)
}

// RecipeGeneratorInterface defines the pet recipe generation operations
type RecipeGeneratorInterface interface {
	Generate(ctx context.Context, age int, breed string, weight int, useMonths bool) (map[string]any, error)
	GenerateRecipe(ctx context.Context, req types.RecipeRequest) (*types.PetRecipe, error)
}
