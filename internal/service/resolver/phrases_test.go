package resolver

import (
	"reflect"
	"testing"

	"github.com/heartmarshall/wikisynset/internal/provider"
)

func TestExtractCandidatePhrases_NilPage(t *testing.T) {
	svc := newTestService(t, nil, nil)

	if phrases := svc.extractCandidatePhrases(nil); phrases != nil {
		t.Errorf("expected no phrases for nil page, got %v", phrases)
	}
}

func TestExtractCandidatePhrases_ContentPage(t *testing.T) {
	svc := newTestService(t, nil, nil)

	page := &provider.PageData{
		Title:        "Rhine",
		Descriptions: []string{"river in Western Europe"},
		Labels:       []string{"Rhine"},
		Aliases:      []string{"Rhein"},
		Categories: []string{
			"Category:Rivers of Germany",
			"Category:Articles with short description",
			"Category:Rivers of Europe",
		},
		Extract: "<p>The <b>Rhine</b> is a river in Western Europe.</p>",
	}

	got := svc.extractCandidatePhrases(page)
	want := []string{
		"Rhine",  // title
		"river",  // description, cut at the preposition
		"Rhine",  // label
		"Rhein",  // alias
		"Rivers", // categories in reverse order, housekeeping one dropped
		"Rivers",
		"river", // extract phrase
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phrases = %v, want %v", got, want)
	}
}

func TestExtractCandidatePhrases_TitleOnlyPage(t *testing.T) {
	svc := newTestService(t, nil, nil)

	got := svc.extractCandidatePhrases(&provider.PageData{Title: "river"})
	want := []string{"river"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phrases = %v, want %v", got, want)
	}
}

func TestExtractCandidatePhrases_DisambiguationPage(t *testing.T) {
	svc := newTestService(t, nil, nil)

	page := &provider.PageData{
		Title:        "Mercury",
		Descriptions: []string{"Wikimedia disambiguation page"},
		Categories:   []string{"Category:Disambiguation pages"},
		Extract: "<p>Mercury may refer to:</p>" +
			"<ul><li>Mercury (planet), the smallest planet</li>" +
			"<li>Mercury (element)</li></ul>",
	}

	got := svc.extractCandidatePhrases(page)
	want := []string{"planet", "the smallest planet", "element"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phrases = %v, want %v", got, want)
	}
}

func TestExtractCandidatePhrases_DisambiguationWithoutExtract(t *testing.T) {
	svc := newTestService(t, nil, nil)

	page := &provider.PageData{
		Title:      "Mercury",
		Categories: []string{"Category:Disambiguation pages"},
	}

	if phrases := svc.extractCandidatePhrases(page); phrases != nil {
		t.Errorf("expected no phrases, got %v", phrases)
	}
}

func TestCleanPhrases(t *testing.T) {
	svc := newTestService(t, nil, nil)

	got := svc.cleanPhrases([]string{
		"  Rivers of Germany ",
		"city in France",
		"fruit (botany)",
		"",
		"   ",
	})
	want := []string{"Rivers", "city", "fruit botany"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("cleanPhrases = %v, want %v", got, want)
	}
}

func TestStripNamespace(t *testing.T) {
	if got := stripNamespace("Category:Rivers of Germany"); got != "Rivers of Germany" {
		t.Errorf("stripNamespace = %q", got)
	}
	if got := stripNamespace("No namespace here"); got != "No namespace here" {
		t.Errorf("stripNamespace = %q", got)
	}
}

// --- extractPhrases ---

func TestExtractPhrases_AllCapsHeadMeansOrganization(t *testing.T) {
	svc := newTestService(t, nil, nil)

	got := svc.extractPhrases("<p>UNESCO</p>", false)
	want := []string{"organization"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phrases = %v, want %v", got, want)
	}
}

func TestExtractPhrases_FirstSentenceOpener(t *testing.T) {
	svc := newTestService(t, nil, nil)

	got := svc.extractPhrases("<p>The Rhine is a river in Western Europe. It flows north.</p>", false)
	want := []string{"river in Western Europe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phrases = %v, want %v", got, want)
	}
}

func TestExtractPhrases_SpanIDFallback(t *testing.T) {
	svc := newTestService(t, nil, nil)

	// The opener consumes the whole head, so the first section anchor is used.
	got := svc.extractPhrases(`<p>Smith may refer to</p><span id="People"></span>`, false)
	want := []string{"People"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phrases = %v, want %v", got, want)
	}
}

func TestExtractPhrases_SpanIDFallbackRejectsOtherAnchors(t *testing.T) {
	svc := newTestService(t, nil, nil)

	got := svc.extractPhrases(`<p>Smith may refer to</p><span id="See_also"></span>`, false)
	if got != nil {
		t.Errorf("expected no phrases, got %v", got)
	}
}

func TestExtractPhrases_ListItems(t *testing.T) {
	svc := newTestService(t, nil, nil)

	extract := "<p>Bank may refer to:</p>" +
		"<ul><li>Bank (institution), a financial establishment</li>" +
		"<li>Bank, the land alongside a river</li>" +
		"<li>Bank shot</li></ul>"

	got := svc.extractPhrases(extract, true)
	want := []string{
		"institution",
		" a financial establishment",
		" the land alongside a river",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phrases = %v, want %v", got, want)
	}
}

func TestExtractPhrases_ListItemsIgnoredOutsideSearchMode(t *testing.T) {
	svc := newTestService(t, nil, nil)

	extract := "<p>Plain text without openers</p>" +
		"<ul><li>Something (gloss), a thing</li></ul>"

	if got := svc.extractPhrases(extract, false); got != nil {
		t.Errorf("expected no phrases, got %v", got)
	}
}

func TestExtractPhrases_EmptyExtract(t *testing.T) {
	svc := newTestService(t, nil, nil)

	if got := svc.extractPhrases("", false); got != nil {
		t.Errorf("expected no phrases for empty extract, got %v", got)
	}
}
