package gpt

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type Client struct {
	Client  openai.Client
	ModelID string
}

func NewClient(apiKey string, baseURL string, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("LLM API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("LLM model ID is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Client{
		Client:  openai.NewClient(opts...),
		ModelID: model,
	}, nil
}
