package security

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

const (
	// MaxSearchQueryLength defines the maximum allowed length for search queries
	MaxSearchQueryLength = 100
)

// injectionPatterns flags markup and script fragments. Search terms are
// echoed back to web clients, so reject anything that looks like an
// attempt to smuggle markup through the query parameter.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(<script|</script|javascript:|vbscript:|onload=|onerror=)`),
	regexp.MustCompile(`(?i)(<iframe|</iframe|<img|<svg)`),
}

// ValidateSearchQuery validates and normalizes a free-text search term.
// The empty string is valid and means "no filter".
func ValidateSearchQuery(query string) (string, error) {
	if query == "" {
		return "", nil
	}

	if len(query) > MaxSearchQueryLength {
		return "", errors.New("search query too long")
	}

	query = strings.TrimSpace(query)

	for _, pattern := range injectionPatterns {
		if pattern.MatchString(query) {
			return "", errors.New("search query contains invalid characters")
		}
	}

	for _, char := range query {
		if !isValidSearchChar(char) {
			return "", errors.New("search query contains invalid characters")
		}
	}

	return query, nil
}

// isValidSearchChar checks if a character is safe for search queries
func isValidSearchChar(char rune) bool {
	// Allow letters, numbers, spaces, and common punctuation
	return unicode.IsLetter(char) || unicode.IsNumber(char) ||
		char == ' ' || char == '-' || char == '_' || char == '.' ||
		char == '@' || char == '+' || char == '\'' || char == ','
}
