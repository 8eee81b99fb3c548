package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pet-recipe/backend/internal/api"
	"github.com/pageza/pet-recipe/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(recipeHandler *api.RecipeHandler, allowedOrigins []string, logger *slog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.CORS(allowedOrigins),
	)

	router.GET("/health", api.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	recipeHandler.RegisterRoutes(v1)

	return router
}
