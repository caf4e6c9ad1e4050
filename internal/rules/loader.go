package rules

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// fileRules is the on-disk YAML shape of the rule file.
type fileRules struct {
	Overrides map[string]string `yaml:"overrides"`
	Patterns  filePatterns      `yaml:"patterns"`
	Pronouns  map[string]string `yaml:"pronouns"`
}

type filePatterns struct {
	Disambiguation    string `yaml:"disambiguation"`
	GeneralCategories string `yaml:"general_categories"`
	ExtractPreference string `yaml:"extract_preference"`
	Preposition       string `yaml:"preposition"`
	Determiners       string `yaml:"determiners"`
}

// Load reads a rule file and compiles it into a Rules value. Tables missing
// from the file fall back to the built-in defaults. An empty path returns the
// defaults unchanged. A pattern that does not compile fails loading; the
// resolver never sees a partially valid rule set.
func Load(path string) (*Rules, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: read %s: %w", path, err)
	}

	var fr fileRules
	if err := yaml.Unmarshal(raw, &fr); err != nil {
		return nil, fmt.Errorf("rules: parse %s: %w", path, err)
	}

	r, err := compile(fr)
	if err != nil {
		return nil, fmt.Errorf("rules: %s: %w", path, err)
	}
	return r, nil
}

// compile merges file tables over the built-in defaults and compiles the
// patterns.
func compile(fr fileRules) (*Rules, error) {
	r := &Rules{
		Overrides: defaultOverrides,
		Pronouns:  defaultPronouns,
	}
	if fr.Overrides != nil {
		r.Overrides = fr.Overrides
	}
	if fr.Pronouns != nil {
		r.Pronouns = fr.Pronouns
	}

	var err error
	if r.Disambiguation, err = compilePattern("disambiguation", fr.Patterns.Disambiguation, defaultDisambiguation); err != nil {
		return nil, err
	}
	if r.GeneralCategories, err = compilePattern("general_categories", fr.Patterns.GeneralCategories, defaultGeneralCategories); err != nil {
		return nil, err
	}
	if r.ExtractPreference, err = compilePattern("extract_preference", fr.Patterns.ExtractPreference, defaultExtractPreference); err != nil {
		return nil, err
	}
	if r.Preposition, err = compilePattern("preposition", fr.Patterns.Preposition, defaultPreposition); err != nil {
		return nil, err
	}

	determiners := fr.Patterns.Determiners
	if determiners == "" {
		determiners = defaultDeterminers
	}
	r.Determiners = splitTokenSet(determiners)

	return r, nil
}

func compilePattern(name, pattern, fallback string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = fallback
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("pattern %s: %w", name, err)
	}
	return re, nil
}
