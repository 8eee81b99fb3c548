// Command generate asks the model for one recipe and prints it as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/pet-recipe/backend/config"
	"github.com/pageza/pet-recipe/backend/internal/llm"
	"github.com/pageza/pet-recipe/backend/internal/logger"
	"github.com/pageza/pet-recipe/backend/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to generate recipe: %v", err)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logr := logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stderr})

	client, err := llm.NewOpenAIClient(llm.OpenAIConfig{
		APIKey:      cfg.OpenAIAPIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		Model:       cfg.OpenAIModel,
		Temperature: float32(cfg.Temperature),
		Logger:      logr,
	})
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recipe, err := service.NewPetRecipeGenerator(client, logr).Generate(ctx, 9, "german shepherd", 25, true)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recipe); err != nil {
		return fmt.Errorf("failed to encode recipe: %w", err)
	}
	return nil
}
