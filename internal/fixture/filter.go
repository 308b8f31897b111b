package fixture

import (
	"path/filepath"
	"strings"

	"nbfix/internal/domain"
)

// Filter filters fixture cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters cases by name pattern using wildcard matching.
// Supports patterns like "unicode_*" or "*trailing*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(cases []domain.Case, pattern string) []domain.Case {
	if pattern == "" {
		return cases
	}

	var filtered []domain.Case

	for _, c := range cases {
		// filepath.Match handles * and ? wildcards
		matched, err := filepath.Match(pattern, c.Name)
		if err == nil && matched {
			filtered = append(filtered, c)
			continue
		}

		if strings.Contains(pattern, "*") {
			// Fall back to substring matching for patterns like
			// "*line*newline" that filepath.Match is too strict for
			if matchParts(c.Name, strings.Split(pattern, "*")) {
				filtered = append(filtered, c)
			}
			continue
		}

		if !strings.Contains(pattern, "?") && strings.Contains(c.Name, pattern) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}

// matchParts reports whether every non-empty part occurs in name and at
// least one part is non-empty
func matchParts(name string, parts []string) bool {
	hasNonEmpty := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmpty = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasNonEmpty
}
