package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigRequirements defines required configuration for each environment
type ConfigRequirements struct {
	RequiredEnvVars []string
	RequiredSecrets []string
}

// Environment-specific requirements
var requirements = map[Environment]ConfigRequirements{
	CI: {
		RequiredEnvVars: []string{"OPENAI_API_KEY"},
	},
	Production: {
		RequiredSecrets: []string{"openai_api_key"},
	},
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	reqs := requirements[cfg.Environment]

	var errs []string

	// OPENAI_API_KEY_FILE is an accepted key source in every environment.
	if os.Getenv("OPENAI_API_KEY_FILE") == "" {
		for _, envVar := range reqs.RequiredEnvVars {
			if os.Getenv(envVar) == "" {
				errs = append(errs, ValidationError{Field: envVar, Message: "required environment variable is not set"}.Error())
			}
		}
		for _, secret := range reqs.RequiredSecrets {
			if readSecret(secret) == "" {
				errs = append(errs, ValidationError{Field: secret, Message: "required secret is not set"}.Error())
			}
		}
	}

	if cfg.OpenAIAPIKey == "" {
		errs = append(errs, ValidationError{Field: "OPENAI_API_KEY", Message: "an API key for the model provider is required"}.Error())
	}
	if cfg.OpenAIModel == "" {
		errs = append(errs, ValidationError{Field: "LLM_MODEL", Message: "model name must not be empty"}.Error())
	}
	// A zero temperature is dropped from the request body and the provider default applies.
	if cfg.Temperature <= 0 || cfg.Temperature > 2 {
		errs = append(errs, ValidationError{Field: "LLM_TEMPERATURE", Message: fmt.Sprintf("must be greater than 0 and at most 2, got %g", cfg.Temperature)}.Error())
	}
	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)}.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
