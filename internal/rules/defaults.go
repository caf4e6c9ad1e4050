package rules

import "strings"

// Built-in tables used when no rule file is configured. Individual tables in
// a rule file replace their built-in counterpart wholesale.
const (
	defaultDisambiguation    = `[Dd]isambiguation`
	defaultGeneralCategories = `(?i)(articles |pages |wikipedia|wikidata|webarchive|cs1|use [a-z]+ dates|short description|commons category)`
	defaultExtractPreference = `\b(?:is|was|are|were|refers? to)\b(?:\s+(?:a|an|the)\b)?\s*`
	defaultPreposition       = ` (of|in|on|at|from|by|for|with|to|near|under|over|between|among|through|during|against|about|into) `
	defaultDeterminers       = `a|an|the|any|some|one|this|that`
)

var defaultOverrides = map[string]string{
	// Phrases synthesized by the extract heuristics ("organization", span ids
	// "Person"/"People"/"Place") are pinned to their intended senses.
	"organization": "organization.n.01",
	"person":       "person.n.01",
	"people":       "people.n.01",
	"place":        "place.n.01",
}

var defaultPronouns = map[string]string{
	"i":    "person",
	"you":  "person",
	"he":   "person",
	"she":  "person",
	"him":  "person",
	"her":  "person",
	"we":   "group",
	"us":   "group",
	"they": "group",
	"them": "group",
	"it":   "entity",
}

// Default returns the built-in rule set.
func Default() *Rules {
	r, err := compile(fileRules{})
	if err != nil {
		// Built-in patterns are constants; failure to compile is a bug.
		panic(err)
	}
	return r
}

// splitTokenSet turns a pipe-separated alternation ("a|an|the") into a set.
func splitTokenSet(alternation string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Split(alternation, "|") {
		if tok = strings.TrimSpace(tok); tok != "" {
			set[tok] = struct{}{}
		}
	}
	return set
}
