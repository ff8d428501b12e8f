package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultSystemPrompt = "You are a search suggestion assistant. Given a partial search query, " +
		"provide relevant autocomplete suggestions. Return ONLY a JSON array of strings."
	defaultUserPrompt = `Provide {{.Limit}} search suggestions for: "{{.Query}}"`

	defaultMaxTokens   = 200
	defaultTemperature = 0.7
)

// LoadSuggestConfig reads the prompt configuration from SUGGEST_CONFIG_PATH
// (default configs/suggest.yaml). A missing file is not an error: the built-in
// defaults are returned so the service runs without any config on disk.
func LoadSuggestConfig() (*SuggestConfig, error) {
	path := os.Getenv("SUGGEST_CONFIG_PATH")
	if path == "" {
		path = "configs/suggest.yaml"
	}

	var cfg SuggestConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(&cfg)
			return &cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *SuggestConfig) {
	if cfg.Prompt.System == "" {
		cfg.Prompt.System = defaultSystemPrompt
	}
	if cfg.Prompt.User == "" {
		cfg.Prompt.User = defaultUserPrompt
	}
	if cfg.Model.MaxTokens == 0 {
		cfg.Model.MaxTokens = defaultMaxTokens
	}
	if cfg.Model.Temperature == 0 {
		cfg.Model.Temperature = defaultTemperature
	}
}
