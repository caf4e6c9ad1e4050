package wordnet

import "strings"

// Noun detachment rules from the WordNet morphy algorithm, most specific
// suffix first.
var nounDetachments = []struct {
	suffix, replacement string
}{
	{"ches", "ch"},
	{"shes", "sh"},
	{"sses", "ss"},
	{"xes", "x"},
	{"zes", "z"},
	{"ses", "s"},
	{"ies", "y"},
	{"men", "man"},
	{"s", ""},
}

// Lemmatize reduces word to a base form known to the corpus: the exception
// list first, then the detachment rules. The input is returned unchanged when
// no known base form is found.
func (db *DB) Lemmatize(word string) string {
	w := strings.ReplaceAll(strings.ToLower(word), " ", "_")

	if base, ok := db.exc[w]; ok {
		return base
	}

	for _, rule := range nounDetachments {
		if !strings.HasSuffix(w, rule.suffix) || len(w) <= len(rule.suffix) {
			continue
		}
		candidate := w[:len(w)-len(rule.suffix)] + rule.replacement
		if _, ok := db.index[candidate]; ok {
			return candidate
		}
	}

	return word
}
