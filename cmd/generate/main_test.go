package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pet-recipe/backend/internal/types"
)

func setupEnv(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_API_KEY_FILE", "")
	t.Setenv("OPENAI_API_BASE", ts.URL+"/v1")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("LLM_TEMPERATURE", "")
	t.Setenv("LOG_LEVEL", "error")
}

func TestRun(t *testing.T) {
	hits := 0
	setupEnv(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"chatcmpl-1","object":"chat.completion","model":"gpt-3.5-turbo","choices":[{"index":0,
			"message":{"role":"assistant","content":"","tool_calls":[{"id":"call_1","type":"function","function":{"name":"PetRecipe",
			"arguments":"{\"title\":\"Stew\",\"description\":\"d\",\"ingredients\":[\"rice\"],\"recipe\":[\"boil\"]}"}}]},"finish_reason":"stop"}]}`)
	})

	require.NoError(t, run())
	assert.Equal(t, 1, hits)
}

func TestRun_ReturnsUpstreamError(t *testing.T) {
	setupEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
	})

	err := run()
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUpstream)
}

func TestRun_ConfigurationError(t *testing.T) {
	setupEnv(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	t.Setenv("LLM_TEMPERATURE", "hot")

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
