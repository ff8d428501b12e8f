package suggest

import "fmt"

// StaticSuggestions builds the deterministic last-resort list for a query.
// Both the LLM source (on unparseable output) and the resolver (when every
// source fails) go through this single function, so the two fallback sites
// cannot drift apart.
func StaticSuggestions(query string, limit int) []string {
	patterns := []string{
		fmt.Sprintf("%s tutorial", query),
		fmt.Sprintf("%s example", query),
		fmt.Sprintf("%s documentation", query),
		fmt.Sprintf("how to %s", query),
		fmt.Sprintf("%s guide", query),
	}

	if limit < len(patterns) {
		patterns = patterns[:limit]
	}

	return patterns
}
