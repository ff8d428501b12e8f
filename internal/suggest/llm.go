package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/rs/zerolog"
	"github.com/searchlite/suggest-api/internal/config"
	"github.com/searchlite/suggest-api/internal/llm"
)

// LLMSource asks a language model for suggestions when the public suggest
// endpoint yields nothing. The model is instructed to answer with a JSON
// array of strings; anything that cannot be parsed as one degrades to the
// static list.
type LLMSource struct {
	systemPrompt string
	userTemplate *template.Template
	modelConfig  config.ModelConfig
	llmClient    llm.LLMClient
	logger       *zerolog.Logger
}

type promptData struct {
	Query string
	Limit int
}

func NewLLMSource(cfg *config.SuggestConfig, llmClient llm.LLMClient, logger *zerolog.Logger) (*LLMSource, error) {
	tmpl, err := template.New("suggest-user-prompt").Parse(cfg.Prompt.User)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user prompt template: %w", err)
	}

	return &LLMSource{
		systemPrompt: cfg.Prompt.System,
		userTemplate: tmpl,
		modelConfig:  cfg.Model,
		llmClient:    llmClient,
		logger:       logger,
	}, nil
}

// Fetch returns up to limit suggestions from the LLM. An API failure is
// returned to the caller; a response that is not a usable JSON array is not,
// that case falls back to StaticSuggestions so the step still produces output.
func (s *LLMSource) Fetch(ctx context.Context, query string, limit int) ([]string, error) {
	prompt, err := s.buildPrompt(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	resp, err := s.llmClient.InvokeModel(ctx, llm.LLMRequest{
		System:      s.systemPrompt,
		Prompt:      prompt,
		MaxTokens:   s.modelConfig.MaxTokens,
		Temperature: s.modelConfig.Temperature,
	})
	if err != nil {
		return nil, err
	}

	suggestions, ok := parseSuggestionArray(resp.Content, limit)
	if !ok {
		s.logger.Warn().
			Str("query", query).
			Str("content", resp.Content).
			Msg("LLM response is not a JSON array, using static suggestions")
		return StaticSuggestions(query, limit), nil
	}

	return suggestions, nil
}

func (s *LLMSource) buildPrompt(query string, limit int) (string, error) {
	var buf bytes.Buffer
	if err := s.userTemplate.Execute(&buf, promptData{Query: query, Limit: limit}); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}

// parseSuggestionArray extracts a JSON string array from LLM output. The
// model usually answers with the bare array, but sometimes wraps it in prose,
// so when the text does not start with '[' the substring between the first
// '[' and the last ']' is tried instead.
func parseSuggestionArray(content string, limit int) ([]string, bool) {
	content = strings.TrimSpace(content)

	candidate := content
	if !strings.HasPrefix(content, "[") {
		start := strings.Index(content, "[")
		end := strings.LastIndex(content, "]")
		if start < 0 || end <= start {
			return nil, false
		}
		candidate = content[start : end+1]
	}

	var raw []any
	if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
		return nil, false
	}

	suggestions := make([]string, 0, limit)
	for _, item := range raw {
		str, ok := item.(string)
		if !ok {
			continue
		}
		suggestions = append(suggestions, str)
		if len(suggestions) == limit {
			break
		}
	}

	return suggestions, true
}
