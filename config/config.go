package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Default values used when neither an environment variable nor a secret is set
const (
	DefaultServerPort     = "8080"
	DefaultModel          = "gpt-3.5-turbo"
	DefaultTemperature    = 1.0
	DefaultAllowedOrigins = "http://localhost:5173"
	DefaultLogLevel       = "info"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerHost     string
	ServerPort     string
	AllowedOrigins []string

	// LLM provider configuration
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	Temperature   float64

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return c.ServerHost + ":" + c.ServerPort
}

// IsProduction reports whether the configuration was loaded for production
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// lookupFunc resolves a setting from its environment variable name and secret file name
type lookupFunc func(envVar, secret string) string

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{Environment: env}

	var err error
	switch env {
	case CI:
		err = loadCIConfig(cfg)
	case Development, Test:
		err = loadDevConfig(cfg)
	case Production:
		err = loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI using environment variables only
func loadCIConfig(cfg *Config) error {
	return populate(cfg, func(envVar, _ string) string {
		return os.Getenv(envVar)
	})
}

// loadDevConfig prefers environment variables and falls back to Docker secrets
func loadDevConfig(cfg *Config) error {
	return populate(cfg, func(envVar, secret string) string {
		if v := os.Getenv(envVar); v != "" {
			return v
		}
		return readSecret(secret)
	})
}

// loadProdConfig prefers Docker secrets and falls back to environment variables
func loadProdConfig(cfg *Config) error {
	return populate(cfg, func(envVar, secret string) string {
		if v := readSecret(secret); v != "" {
			return v
		}
		return os.Getenv(envVar)
	})
}

func populate(cfg *Config, lookup lookupFunc) error {
	cfg.ServerHost = lookup("SERVER_HOST", "server_host")
	cfg.ServerPort = withDefault(lookup("SERVER_PORT", "server_port"), DefaultServerPort)
	cfg.AllowedOrigins = splitList(withDefault(lookup("CORS_ORIGINS", "cors_origins"), DefaultAllowedOrigins))

	apiKey, err := loadAPIKey(lookup)
	if err != nil {
		return err
	}
	cfg.OpenAIAPIKey = apiKey
	cfg.OpenAIBaseURL = strings.TrimRight(lookup("OPENAI_API_BASE", "openai_api_base"), "/")
	cfg.OpenAIModel = withDefault(lookup("LLM_MODEL", "llm_model"), DefaultModel)

	cfg.Temperature = DefaultTemperature
	if raw := lookup("LLM_TEMPERATURE", "llm_temperature"); raw != "" {
		temperature, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid LLM_TEMPERATURE %q: %w", raw, err)
		}
		cfg.Temperature = temperature
	}

	cfg.LogLevel = withDefault(lookup("LOG_LEVEL", "log_level"), DefaultLogLevel)
	defaultFormat := "text"
	if cfg.IsProduction() {
		defaultFormat = "json"
	}
	cfg.LogFormat = withDefault(lookup("LOG_FORMAT", "log_format"), defaultFormat)

	return nil
}

// loadAPIKey reads the provider key from the variable, the secret, or the
// file named by OPENAI_API_KEY_FILE.
func loadAPIKey(lookup lookupFunc) (string, error) {
	if key := lookup("OPENAI_API_KEY", "openai_api_key"); key != "" {
		return key, nil
	}

	keyFile := os.Getenv("OPENAI_API_KEY_FILE")
	if keyFile == "" {
		return "", nil
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("API key file is empty")
	}
	return key, nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func withDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
