package resolver

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// titleCloseEnough reports whether a search-result title is plausibly a page
// about the original term. Three independent thresholds catch near-prefix
// matches, proportionally small edits, and length-skewed near-matches:
//
//  1. the title starts with the term (case-insensitive);
//  2. edit distance is at most half the longer string's length;
//  3. edit distance is within the length difference plus one, and the term is
//     at least a third as long as the title.
func titleCloseEnough(term, title string) bool {
	lterm := strings.ToLower(term)
	ltitle := strings.ToLower(title)

	if strings.HasPrefix(ltitle, lterm) {
		return true
	}

	dist := levenshtein.ComputeDistance(lterm, ltitle)
	termLen := utf8.RuneCountInString(lterm)
	titleLen := utf8.RuneCountInString(ltitle)

	if 2*dist <= max(termLen, titleLen) {
		return true
	}

	diff := termLen - titleLen
	if diff < 0 {
		diff = -diff
	}
	return dist <= diff+1 && 3*termLen >= titleLen
}
