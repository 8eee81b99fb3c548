package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pet-recipe/backend/config"
	"github.com/pageza/pet-recipe/backend/internal/api"
	"github.com/pageza/pet-recipe/backend/internal/llm"
	"github.com/pageza/pet-recipe/backend/internal/logger"
	"github.com/pageza/pet-recipe/backend/internal/router"
	"github.com/pageza/pet-recipe/backend/internal/server"
	"github.com/pageza/pet-recipe/backend/internal/service"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr := logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	client, err := llm.NewOpenAIClient(llm.OpenAIConfig{
		APIKey:      cfg.OpenAIAPIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		Model:       cfg.OpenAIModel,
		Temperature: float32(cfg.Temperature),
		Logger:      logr,
	})
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}

	generator := service.NewPetRecipeGenerator(client, logr)
	engine := router.SetupRouter(api.NewRecipeHandler(generator, logr), cfg.AllowedOrigins, logr)
	srv := server.NewServer(cfg.Address(), engine, logr)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logr.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	case sig := <-quit:
		logr.Info("received signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	logr.Info("server stopped")
}
