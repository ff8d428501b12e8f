package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/searchlite/suggest-api/internal/config"
	"github.com/searchlite/suggest-api/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLLMClient is a hand-written test double for llm.LLMClient
type MockLLMClient struct {
	ResponseToReturn *llm.LLMResponse
	ErrorToReturn    error
	LastRequest      *llm.LLMRequest
	CallCount        int
}

func (m *MockLLMClient) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	m.CallCount++
	m.LastRequest = &request

	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}

	return m.ResponseToReturn, nil
}

func testSuggestConfig() *config.SuggestConfig {
	return &config.SuggestConfig{
		Prompt: config.PromptConfig{
			System: "You are a search suggestion assistant. Return ONLY a JSON array of strings.",
			User:   `Provide {{.Limit}} search suggestions for: "{{.Query}}"`,
		},
		Model: config.ModelConfig{
			MaxTokens:   200,
			Temperature: 0.7,
		},
	}
}

func newTestLLMSource(t *testing.T, client llm.LLMClient) *LLMSource {
	t.Helper()

	logger := zerolog.Nop()
	source, err := NewLLMSource(testSuggestConfig(), client, &logger)
	require.NoError(t, err)

	return source
}

func TestNewLLMSource_InvalidTemplate(t *testing.T) {
	logger := zerolog.Nop()
	cfg := testSuggestConfig()
	cfg.Prompt.User = "{{.Invalid"

	_, err := NewLLMSource(cfg, &MockLLMClient{}, &logger)
	assert.Error(t, err)
}

func TestLLMSource_Fetch_BareArray(t *testing.T) {
	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{Content: `["x", "y"]`},
	}
	source := newTestLLMSource(t, mockClient)

	suggestions, err := source.Fetch(context.Background(), "dog", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, suggestions)
}

func TestLLMSource_Fetch_ArrayEmbeddedInProse(t *testing.T) {
	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{Content: `Suggestions: ["x", "y"]`},
	}
	source := newTestLLMSource(t, mockClient)

	suggestions, err := source.Fetch(context.Background(), "dog", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, suggestions)
}

func TestLLMSource_Fetch_TruncatesToLimit(t *testing.T) {
	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{Content: `["a", "b", "c", "d"]`},
	}
	source := newTestLLMSource(t, mockClient)

	suggestions, err := source.Fetch(context.Background(), "dog", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, suggestions)
}

func TestLLMSource_Fetch_SkipsNonStrings(t *testing.T) {
	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{Content: `["a", 1, {"b": 2}, "c"]`},
	}
	source := newTestLLMSource(t, mockClient)

	suggestions, err := source.Fetch(context.Background(), "dog", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, suggestions)
}

func TestLLMSource_Fetch_UnparseableFallsBackToStatic(t *testing.T) {
	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{Content: `I cannot help with that.`},
	}
	source := newTestLLMSource(t, mockClient)

	suggestions, err := source.Fetch(context.Background(), "dog", 3)
	require.NoError(t, err)
	assert.Equal(t, StaticSuggestions("dog", 3), suggestions)
}

func TestLLMSource_Fetch_InvalidJSONFallsBackToStatic(t *testing.T) {
	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{Content: `Here you go: [not, valid, json`},
	}
	source := newTestLLMSource(t, mockClient)

	suggestions, err := source.Fetch(context.Background(), "dog", 5)
	require.NoError(t, err)
	assert.Equal(t, StaticSuggestions("dog", 5), suggestions)
}

func TestLLMSource_Fetch_APIErrorPropagates(t *testing.T) {
	mockClient := &MockLLMClient{
		ErrorToReturn: errors.New("model unavailable"),
	}
	source := newTestLLMSource(t, mockClient)

	_, err := source.Fetch(context.Background(), "dog", 5)
	assert.Error(t, err)
}

func TestLLMSource_Fetch_RequestParameters(t *testing.T) {
	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{Content: `["a"]`},
	}
	source := newTestLLMSource(t, mockClient)

	_, err := source.Fetch(context.Background(), "dog", 4)
	require.NoError(t, err)

	require.NotNil(t, mockClient.LastRequest)
	assert.Equal(t, 200, mockClient.LastRequest.MaxTokens)
	assert.Equal(t, 0.7, mockClient.LastRequest.Temperature)
	assert.Contains(t, mockClient.LastRequest.System, "search suggestion assistant")
	assert.Contains(t, mockClient.LastRequest.Prompt, `Provide 4 search suggestions for: "dog"`)
}
