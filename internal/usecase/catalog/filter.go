package catalog

import (
	"strings"

	domain "github.com/jaipal-12/villageconnect/internal/domain/catalog"
)

// Filter derives a display subset of the catalog from two independent,
// conjunctive filters. Category must match exactly (CategoryAll passes
// everything); the search term matches case-insensitively as a substring
// of title, description, or provider (empty passes everything). The
// result preserves catalog order. Pure and deterministic.
func Filter(services []domain.Service, category domain.Category, term string) []domain.Service {
	term = strings.ToLower(term)

	out := make([]domain.Service, 0, len(services))
	for _, s := range services {
		if category != domain.CategoryAll && s.Category != category {
			continue
		}
		if term != "" && !matchesTerm(&s, term) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// matchesTerm reports whether the lowercased term appears in any of the
// three searchable fields.
func matchesTerm(s *domain.Service, term string) bool {
	return strings.Contains(strings.ToLower(s.Title), term) ||
		strings.Contains(strings.ToLower(s.Description), term) ||
		strings.Contains(strings.ToLower(s.Provider), term)
}

// CountByCategory returns the number of services per category, keyed by
// the fixed category enumeration.
func CountByCategory(services []domain.Service) map[domain.Category]int {
	counts := make(map[domain.Category]int, len(domain.Categories))
	for _, c := range domain.Categories {
		counts[c] = 0
	}
	for _, s := range services {
		counts[s.Category]++
	}
	return counts
}
