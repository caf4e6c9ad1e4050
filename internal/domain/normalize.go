package domain

import (
	"strings"
)

// NormalizeTerm prepares a lookup term for resolution:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into single spaces
//
// Case is preserved: encyclopedia titles are case-sensitive past the first
// letter, so "US Open" and "us open" are different lookups.
func NormalizeTerm(term string) string {
	return strings.Join(strings.Fields(term), " ")
}
