package config

// SuggestConfig represents the complete suggestion-prompt configuration
type SuggestConfig struct {
	Prompt PromptConfig `yaml:"prompt"`
	Model  ModelConfig  `yaml:"model"`
}

// PromptConfig holds the system instruction and the user prompt template.
// The user template receives {{.Query}} and {{.Limit}}.
type PromptConfig struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

// ModelConfig contains sampling parameters for the LLM call
type ModelConfig struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}
