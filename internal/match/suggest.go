package match

import (
	"github.com/sahilm/fuzzy"
)

// Suggest returns up to limit candidates that loosely resemble the patterns.
// It is used to enrich "not found" errors and never selects a candidate.
func Suggest(patterns Patterns, candidates []string, limit int) []string {
	if len(patterns) == 0 || len(candidates) == 0 || limit <= 0 {
		return nil
	}

	// fuzzy matches characters in order, so drop the separators between tokens
	query := ""
	for _, p := range patterns {
		query += p
	}

	matches := fuzzy.Find(query, candidates)
	suggestions := make([]string, 0, limit)
	for _, m := range matches {
		if len(suggestions) == limit {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}
