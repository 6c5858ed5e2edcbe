package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSearchQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expectError bool
		errorMsg    string
		expected    string
	}{
		{
			name:     "valid empty query",
			query:    "",
			expected: "",
		},
		{
			name:     "valid simple query",
			query:    "tractor",
			expected: "tractor",
		},
		{
			name:     "valid query with spaces",
			query:    "crop loan",
			expected: "crop loan",
		},
		{
			name:     "valid query with allowed punctuation",
			query:    "farmer's co-op, est. 1998",
			expected: "farmer's co-op, est. 1998",
		},
		{
			name:     "valid accented query",
			query:    "café scheme",
			expected: "café scheme",
		},
		{
			name:     "valid query with leading/trailing spaces",
			query:    "  health camp  ",
			expected: "health camp",
		},
		{
			name:        "query too long",
			query:       strings.Repeat("a", MaxSearchQueryLength+1),
			expectError: true,
			errorMsg:    "search query too long",
		},
		{
			name:        "script tag",
			query:       "<script>alert('xss')</script>",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "javascript scheme",
			query:       "javascript:alert(1)",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "event handler attribute",
			query:       "x onerror=alert(1)",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "embedded iframe",
			query:       "<iframe src=x>",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "disallowed punctuation - ampersand",
			query:       "health&safety",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
		{
			name:        "disallowed punctuation - semicolon",
			query:       "loan;drop",
			expectError: true,
			errorMsg:    "search query contains invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateSearchQuery(tt.query)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Empty(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestIsValidSearchChar(t *testing.T) {
	valid := []rune{'a', 'Z', '5', ' ', '-', '_', '.', '@', '+', '\'', ','}
	for _, char := range valid {
		assert.True(t, isValidSearchChar(char), "expected %q to be valid", char)
	}

	invalid := []rune{';', '&', '<', '>', '%', '=', '(', '"'}
	for _, char := range invalid {
		assert.False(t, isValidSearchChar(char), "expected %q to be invalid", char)
	}
}

// BenchmarkValidateSearchQuery benchmarks the validation function
func BenchmarkValidateSearchQuery(b *testing.B) {
	query := "crop loan assistance"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ValidateSearchQuery(query)
	}
}
