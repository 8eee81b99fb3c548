package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pageza/pet-recipe/backend/internal/types"
)

// DefaultTemperature is the maximum-randomness sampling setting.
const DefaultTemperature float32 = 1

// OpenAIConfig configures an OpenAIClient
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

// OpenAIClient calls an OpenAI-compatible chat-completions API with a single
// forced tool.
type OpenAIClient struct {
	api         *openai.Client
	model       string
	temperature float32
	logger      *slog.Logger
}

// NewOpenAIClient creates a client from explicit configuration
func NewOpenAIClient(cfg OpenAIConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key must be set")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		clientCfg.HTTPClient = cfg.HTTPClient
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &OpenAIClient{
		api:         openai.NewClientWithConfig(clientCfg),
		model:       model,
		temperature: temperature,
		logger:      logger,
	}, nil
}

// Model returns the model name requests are sent to
func (c *OpenAIClient) Model() string {
	return c.model
}

// Complete sends the prompt with req.Tool as the only callable function and
// tool_choice pinned to it, so the model cannot answer in free text.
// It returns the raw JSON arguments of that call.
func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (json.RawMessage, error) {
	start := time.Now()

	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{Role: string(m.Role), Content: m.Content}
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		Tools: []openai.Tool{{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        req.Tool.Name,
				Description: req.Tool.Description,
				Parameters:  req.Tool.Parameters,
			},
		}},
		ToolChoice: openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: req.Tool.Name},
		},
	}

	c.logger.DebugContext(ctx, "llm request started",
		"model", c.model,
		"messages_count", len(messages),
		"tool", req.Tool.Name)

	resp, err := c.api.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		c.logger.ErrorContext(ctx, "llm request failed",
			"model", c.model,
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return nil, &types.UpstreamError{
			Op:         "create chat completion",
			StatusCode: statusCode(err),
			Err:        err,
		}
	}

	if len(resp.Choices) == 0 {
		return nil, types.NewSchemaViolation("no choices in response", nil)
	}

	args, err := forcedCallArguments(resp.Choices[0].Message, req.Tool.Name)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "llm response received",
		"model", c.model,
		"tool", req.Tool.Name,
		"arguments_length", len(args),
		"duration_ms", time.Since(start).Milliseconds())

	return args, nil
}

// forcedCallArguments picks the arguments of the call to the named tool.
func forcedCallArguments(msg openai.ChatCompletionMessage, name string) (json.RawMessage, error) {
	if len(msg.ToolCalls) == 0 {
		return nil, types.NewSchemaViolation(fmt.Sprintf("model answered without calling %s", name), nil)
	}

	for _, call := range msg.ToolCalls {
		if call.Function.Name != name {
			continue
		}
		if !json.Valid([]byte(call.Function.Arguments)) {
			return nil, types.NewSchemaViolation(fmt.Sprintf("arguments of %s are not valid JSON", name), nil)
		}
		return json.RawMessage(call.Function.Arguments), nil
	}

	return nil, types.NewSchemaViolation(
		fmt.Sprintf("model called %s instead of %s", msg.ToolCalls[0].Function.Name, name), nil)
}

func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
