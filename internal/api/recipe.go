package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pet-recipe/backend/internal/middleware"
	"github.com/pageza/pet-recipe/backend/internal/service"
	"github.com/pageza/pet-recipe/backend/internal/types"
)

// Error codes returned alongside failed generations
const (
	CodeInvalidRequest  = "invalid_request"
	CodeUpstreamError   = "upstream_error"
	CodeSchemaViolation = "schema_violation"
	CodeInternalError   = "internal_error"
)

// RecipeHandler handles pet recipe requests
type RecipeHandler struct {
	generator service.RecipeGeneratorInterface
	logger    *slog.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(generator service.RecipeGeneratorInterface, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		generator: generator,
		logger:    logger,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/generate", h.Generate)
	}
}

// Generate handles pet recipe generation requests
func (h *RecipeHandler) Generate(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: err.Error(), Code: CodeInvalidRequest})
		return
	}

	recipe, err := h.generator.GenerateRecipe(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		status, code, message := classify(err)
		h.logger.WarnContext(c.Request.Context(), "pet recipe request failed",
			"code", code,
			"error", err,
			"request_id", c.GetString(middleware.RequestIDKey))
		c.JSON(status, middleware.ErrorResponse{Error: message, Code: code})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe.ToMap()})
}

// classify maps a generation failure to an HTTP status, error code and
// client-facing message. Provider details stay in the logs.
func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, types.ErrSchemaViolation):
		return http.StatusBadGateway, CodeSchemaViolation, "Failed to generate recipe: the model returned an invalid recipe"
	case errors.Is(err, types.ErrUpstream):
		return http.StatusBadGateway, CodeUpstreamError, "Failed to generate recipe: the model provider is unavailable"
	default:
		return http.StatusInternalServerError, CodeInternalError, "Failed to generate recipe"
	}
}
