package suggest

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/searchlite/suggest-api/internal/models"
)

const (
	// MinQueryLength is the smallest trimmed query worth resolving.
	MinQueryLength = 2

	// MinLimit and MaxLimit bound the caller-supplied limit.
	MinLimit = 1
	MaxLimit = 10
)

// Resolver runs the suggestion sources in fixed priority order:
// public suggest endpoint, then LLM, then the static list. It never
// returns an error; every failure mode degrades to the next source.
type Resolver struct {
	google *GoogleSource
	llm    *LLMSource
	logger *zerolog.Logger
}

func NewResolver(google *GoogleSource, llmSource *LLMSource, logger *zerolog.Logger) *Resolver {
	return &Resolver{
		google: google,
		llm:    llmSource,
		logger: logger,
	}
}

// Resolve returns suggestions for query, at most limit of them. Queries
// shorter than MinQueryLength after trimming short-circuit to an empty list
// without contacting any source; limits outside [MinLimit, MaxLimit] are
// clamped, not rejected.
func (r *Resolver) Resolve(ctx context.Context, query string, limit int) models.SuggestionsResponse {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < MinQueryLength {
		return models.SuggestionsResponse{Suggestions: []string{}, Query: query}
	}

	limit = clampLimit(limit)

	// 1) public suggest endpoint
	suggestions, err := r.google.Fetch(ctx, trimmed, limit)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("query", trimmed).
			Msg("Suggest source failed, falling back to LLM")
	} else if len(suggestions) > 0 {
		return models.SuggestionsResponse{Suggestions: suggestions, Query: trimmed}
	}

	// 2) LLM fallback; an empty-but-successful result is returned as-is
	suggestions, err = r.llm.Fetch(ctx, trimmed, limit)
	if err == nil {
		return models.SuggestionsResponse{Suggestions: suggestions, Query: trimmed}
	}

	r.logger.Error().
		Err(err).
		Str("query", trimmed).
		Msg("LLM suggestions failed")

	// 3) last resort
	return models.SuggestionsResponse{
		Suggestions: StaticSuggestions(trimmed, limit),
		Query:       trimmed,
	}
}

func clampLimit(limit int) int {
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
