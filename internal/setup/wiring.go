package setup

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/searchlite/suggest-api/internal/config"
	"github.com/searchlite/suggest-api/internal/llm"
	"github.com/searchlite/suggest-api/internal/llm/bedrock"
	"github.com/searchlite/suggest-api/internal/llm/gpt"
	"github.com/searchlite/suggest-api/internal/suggest"
)

// llmBaseURL is fixed for this deployment; only the credential comes from the
// environment.
const llmBaseURL = "https://api.emergent.sh/v1"

type Config struct {
	Port                  string
	LogLevel              string
	SuggestSourceURL      string
	SuggestTimeout        time.Duration
	SuggestConnectTimeout time.Duration
	DefaultProvider       string
	LLMKey                string
	LLMModelID            string
	AWSRegion             string
	ClaudeModelID         string
}

type Dependencies struct {
	Resolver *suggest.Resolver
	Logger   *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Port:                  getEnv("SUGGEST_API_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		SuggestSourceURL:      getEnv("SUGGEST_SOURCE_URL", "https://suggestqueries.google.com/complete/search"),
		SuggestTimeout:        getEnvDuration("SUGGEST_TIMEOUT", 3*time.Second),
		SuggestConnectTimeout: getEnvDuration("SUGGEST_CONNECT_TIMEOUT", 2*time.Second),
		DefaultProvider:       getEnv("DEFAULT_LLM_PROVIDER", "openai"),
		LLMKey:                getEnv("LLM_API_KEY", ""),
		LLMModelID:            getEnv("LLM_MODEL_ID", "gpt-4o-mini"),
		AWSRegion:             getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:         getEnv("CLAUDE_MODEL_ID", ""),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg.DefaultProvider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	suggestConfig, err := config.LoadSuggestConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load suggest config: %w", err)
	}

	llmSource, err := suggest.NewLLMSource(suggestConfig, llmClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM source: %w", err)
	}

	googleSource := suggest.NewGoogleSource(cfg.SuggestSourceURL, cfg.SuggestTimeout, cfg.SuggestConnectTimeout)

	resolver := suggest.NewResolver(googleSource, llmSource, logger)

	return &Dependencies{
		Resolver: resolver,
		Logger:   logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, provider string, cfg *Config) (llm.LLMClient, error) {
	switch provider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case "openai":
		return gpt.NewClient(cfg.LLMKey, llmBaseURL, cfg.LLMModelID)
	default:
		return gpt.NewClient(cfg.LLMKey, llmBaseURL, cfg.LLMModelID)
	}
}
