package resolver

import (
	"strings"
	"unicode/utf8"
)

// Tokens this short ("a", "of", "St") are too ambiguous to pin a sense on.
const minMatchTokenLen = 3

// matchFirstSynset picks the synset for the first phrase that yields any
// match. Within a phrase, later qualifying tokens override earlier ones;
// the rightmost token tends to carry the head noun ("domesticated mammal").
// Across phrases the first hit wins outright, because the extractor emits
// phrases most-specific first.
func (s *Service) matchFirstSynset(phrases []string) (string, bool) {
	for _, phrase := range phrases {
		best := ""
		for _, tok := range strings.Fields(strings.ToLower(phrase)) {
			name, ok := s.tokenSynset(tok)
			if ok && utf8.RuneCountInString(tok) >= minMatchTokenLen {
				best = name
			}
		}
		if best != "" {
			return best, true
		}
	}
	return "", false
}

// tokenSynset finds the default noun sense for a single token: the override
// table first, then a direct corpus lookup, then the lemmatized form.
func (s *Service) tokenSynset(tok string) (string, bool) {
	if name, ok := s.rules.Overrides[tok]; ok {
		// An override must still resolve in the taxonomy; a stale entry is
		// treated as no match rather than surfaced to the caller.
		if syn, err := s.tax.SynsetByName(name); err == nil {
			return syn.Name, true
		}
		return "", false
	}

	senses := s.tax.NounSenses(tok)
	if len(senses) == 0 {
		senses = s.tax.NounSenses(s.tax.Lemmatize(tok))
	}
	if len(senses) == 0 {
		return "", false
	}
	return senses[0].Name, true
}
