package domain

import (
	"strings"
)

// NormalizeText prepares free text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into a single space
//
// Diacritics, digits and punctuation are preserved, so "1  John" and
// "1 john" compare equal while "1 John" and "John" do not.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
