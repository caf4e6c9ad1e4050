package resolver

import (
	"strings"

	"github.com/heartmarshall/wikisynset/internal/provider"
)

// extractCandidatePhrases converts one page-data record into an ordered list
// of candidate phrases, most page-specific signal first. A nil page yields no
// phrases.
func (s *Service) extractCandidatePhrases(page *provider.PageData) []string {
	if page == nil {
		return nil
	}

	var phrases []string
	if len(page.Categories) > 0 && s.rules.Disambiguation.MatchString(page.Categories[0]) {
		// Disambiguation/list page: the term block describes the listing, not
		// the term, so only the extract's list entries can help.
		if page.Extract != "" {
			phrases = s.extractPhrases(page.Extract, true)
		}
	} else {
		phrases = s.pagePhrases(page)
	}

	return s.cleanPhrases(phrases)
}

// pagePhrases builds the phrase list for a normal content page in fixed
// priority order: title, filtered descriptions, labels, aliases, categories
// in reverse site order, extract phrases last.
func (s *Service) pagePhrases(page *provider.PageData) []string {
	phrases := []string{page.Title}

	for _, d := range page.Descriptions {
		if !s.rules.GeneralCategories.MatchString(d) {
			phrases = append(phrases, d)
		}
	}
	phrases = append(phrases, page.Labels...)
	phrases = append(phrases, page.Aliases...)

	// Reverse order: the last site categories tend to be the most specific.
	for i := len(page.Categories) - 1; i >= 0; i-- {
		cat := stripNamespace(page.Categories[i])
		if !s.rules.GeneralCategories.MatchString(cat) {
			phrases = append(phrases, cat)
		}
	}

	if page.Extract != "" {
		phrases = append(phrases, s.extractPhrases(page.Extract, false)...)
	}

	return phrases
}

// cleanPhrases post-processes raw phrases: trims whitespace, drops empties,
// cuts each phrase at the first preposition boundary, and strips punctuation.
func (s *Service) cleanPhrases(raw []string) []string {
	var out []string
	for _, phrase := range raw {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		if loc := s.rules.Preposition.FindStringIndex(phrase); loc != nil {
			phrase = phrase[:loc[0]]
		}
		out = append(out, stripPunctuation(phrase))
	}
	return out
}

// stripNamespace removes the namespace prefix from a category title
// ("Category:Rivers" → "Rivers").
func stripNamespace(title string) string {
	parts := strings.Split(title, ":")
	return parts[len(parts)-1]
}

var punctuationStripper = strings.NewReplacer(
	".", "", ",", "", "?", "", ":", "", ";", "", "(", "", ")", "",
)

func stripPunctuation(s string) string {
	return punctuationStripper.Replace(s)
}
