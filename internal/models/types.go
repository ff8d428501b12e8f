package models

// SuggestionsResponse is the wire format returned by GET /search/suggestions.
// Suggestions holds at most `limit` entries, in source order. Query echoes the
// trimmed query that produced the list (or the raw input when it was too short
// to resolve).
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
	Query       string   `json:"query"`
}
