package resolver

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/heartmarshall/wikisynset/internal/domain"
	"github.com/heartmarshall/wikisynset/internal/provider"
	"github.com/heartmarshall/wikisynset/internal/rules"
)

type pageProviderMock struct {
	fetchFn  func(ctx context.Context, title string) (*provider.PageData, error)
	searchFn func(ctx context.Context, query string) (*provider.SearchResponse, error)
}

func (m *pageProviderMock) FetchPage(ctx context.Context, title string) (*provider.PageData, error) {
	if m.fetchFn == nil {
		return nil, nil
	}
	return m.fetchFn(ctx, title)
}

func (m *pageProviderMock) Search(ctx context.Context, query string) (*provider.SearchResponse, error) {
	if m.searchFn == nil {
		return nil, nil
	}
	return m.searchFn(ctx, query)
}

// taxonomyMock serves a fixed lemma → first-sense table. The override targets
// used by the default rule set are always resolvable by name.
type taxonomyMock struct {
	senses   map[string]string
	byNameFn func(name string) (*domain.Synset, error)
	lemmas   map[string]string
	sensesFn func(lemma string) []*domain.Synset
}

func (m *taxonomyMock) SynsetByName(name string) (*domain.Synset, error) {
	if m.byNameFn != nil {
		return m.byNameFn(name)
	}
	return &domain.Synset{Name: name}, nil
}

func (m *taxonomyMock) NounSenses(lemma string) []*domain.Synset {
	if m.sensesFn != nil {
		return m.sensesFn(lemma)
	}
	if name, ok := m.senses[lemma]; ok {
		return []*domain.Synset{{Name: name}}
	}
	return nil
}

func (m *taxonomyMock) Lemmatize(word string) string {
	if base, ok := m.lemmas[word]; ok {
		return base
	}
	return word
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func newTestService(t *testing.T, pages pageProvider, tax taxonomy) *Service {
	t.Helper()
	if pages == nil {
		pages = &pageProviderMock{}
	}
	if tax == nil {
		tax = &taxonomyMock{}
	}
	return NewService(testLogger(), pages, tax, rules.Default())
}
