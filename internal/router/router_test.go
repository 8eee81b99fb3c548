package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pet-recipe/backend/internal/api"
	"github.com/pageza/pet-recipe/backend/internal/middleware"
	"github.com/pageza/pet-recipe/backend/internal/mocks"
	"github.com/pageza/pet-recipe/backend/internal/types"
)

func setupTestRouter(generator *mocks.MockRecipeGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return SetupRouter(api.NewRecipeHandler(generator, logger), []string{"http://localhost:5173"}, logger)
}

func TestHealth(t *testing.T) {
	router := setupTestRouter(new(mocks.MockRecipeGenerator))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestGenerateRoute(t *testing.T) {
	generator := new(mocks.MockRecipeGenerator)
	generator.On("GenerateRecipe", mock.Anything, mock.Anything).Return(&types.PetRecipe{
		Title:       "Tuna Treat",
		Description: "For a tabby cat",
		Ingredients: []string{},
		Recipe:      []string{},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/generate",
		strings.NewReader(`{"age":5,"breed":"tabby cat","weight":4}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	setupTestRouter(generator).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var response map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, []any{}, response["recipe"]["ingredients"])
	assert.Equal(t, []any{}, response["recipe"]["recipe"])
}

func TestUnknownRoute(t *testing.T) {
	w := httptest.NewRecorder()
	setupTestRouter(new(mocks.MockRecipeGenerator)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
