// Package rules holds the three lookup tables that steer phrase extraction
// and synset matching: synset overrides, named patterns, and pronoun
// categories. Tables are loaded once at startup and never mutated afterwards.
package rules

import "regexp"

// Rules is the compiled, read-only rule set injected into the resolver.
type Rules struct {
	// Overrides maps a lowercase token directly to a synset name, taking
	// precedence over the taxonomy's own default sense ordering.
	Overrides map[string]string

	// Disambiguation recognizes the category title that marks a
	// disambiguation/list page.
	Disambiguation *regexp.Regexp

	// GeneralCategories matches site maintenance and housekeeping categories
	// that carry no semantic signal and must be excluded from phrases.
	GeneralCategories *regexp.Regexp

	// ExtractPreference matches the lexical opener of a typical
	// "X is a Y" / "X (born ...) was a Y" first sentence; the text after the
	// match is the descriptive phrase.
	ExtractPreference *regexp.Regexp

	// Preposition marks the boundary where a phrase's trailing
	// prepositional/appositive clause is cut off.
	Preposition *regexp.Regexp

	// Determiners is the token set used to pick the descriptive comma-part of
	// a disambiguation list line.
	Determiners map[string]struct{}

	// Pronouns maps pronouns to category words. The table is loaded and kept
	// for compatibility with the rule file format but is not consulted during
	// resolution.
	Pronouns map[string]string
}

// HasDeterminer reports whether any of the tokens is in the determiner set.
func (r *Rules) HasDeterminer(tokens []string) bool {
	for _, tok := range tokens {
		if _, ok := r.Determiners[tok]; ok {
			return true
		}
	}
	return false
}
