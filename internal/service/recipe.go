package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/pageza/pet-recipe/backend/internal/llm"
	"github.com/pageza/pet-recipe/backend/internal/logger"
	"github.com/pageza/pet-recipe/backend/internal/types"
)

// PetRecipeGenerator turns pet details into a structured recipe with one
// model call. It holds no per-call state and is safe for concurrent use.
type PetRecipeGenerator struct {
	client CompletionClient
	logger *slog.Logger
}

// NewPetRecipeGenerator creates a generator on top of client.
// A nil log falls back to the global logger.
func NewPetRecipeGenerator(client CompletionClient, log *slog.Logger) *PetRecipeGenerator {
	if log == nil {
		log = logger.L()
	}
	return &PetRecipeGenerator{
		client: client,
		logger: log,
	}
}

// Generate returns the recipe as a mapping with the keys title, description,
// ingredients and recipe. Failures wrap types.ErrUpstream or
// types.ErrSchemaViolation and are never retried.
func (g *PetRecipeGenerator) Generate(ctx context.Context, age int, breed string, weight int, useMonths bool) (map[string]any, error) {
	recipe, err := g.GenerateRecipe(ctx, types.RecipeRequest{
		Age:       age,
		Breed:     breed,
		Weight:    weight,
		UseMonths: useMonths,
	})
	if err != nil {
		return nil, err
	}
	return recipe.ToMap(), nil
}

// GenerateRecipe is the typed form of Generate
func (g *PetRecipeGenerator) GenerateRecipe(ctx context.Context, req types.RecipeRequest) (*types.PetRecipe, error) {
	start := time.Now()
	log := g.logger.With(
		"breed", req.Breed,
		"age", AgePhrase(req.Age, req.UseMonths),
		"weight_kg", req.Weight)

	log.DebugContext(ctx, "generating pet recipe")

	args, err := g.client.Complete(ctx, llm.CompletionRequest{
		Messages: BuildMessages(req),
		Tool:     PetRecipeTool(),
	})
	if err != nil {
		log.ErrorContext(ctx, "pet recipe generation failed", "error", err)
		return nil, err
	}

	recipe, err := types.DecodePetRecipe(args)
	if err != nil {
		log.WarnContext(ctx, "model answer rejected", "error", err)
		return nil, err
	}

	log.InfoContext(ctx, "pet recipe generated",
		"title", recipe.Title,
		"ingredients", len(recipe.Ingredients),
		"steps", len(recipe.Recipe),
		"duration_ms", time.Since(start).Milliseconds())

	return recipe, nil
}
