// Package resolver maps free-text terms to WordNet synset names by mining
// encyclopedia page data for candidate descriptive phrases and matching them
// against the noun taxonomy.
package resolver

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/wikisynset/internal/domain"
	"github.com/heartmarshall/wikisynset/internal/provider"
	"github.com/heartmarshall/wikisynset/internal/rules"
)

// pageProvider supplies encyclopedia page data. A nil result with a nil error
// is the degraded "no data" outcome and is treated like an absent page.
type pageProvider interface {
	FetchPage(ctx context.Context, title string) (*provider.PageData, error)
	Search(ctx context.Context, query string) (*provider.SearchResponse, error)
}

// taxonomy supplies WordNet noun senses and lemmatization.
type taxonomy interface {
	SynsetByName(name string) (*domain.Synset, error)
	NounSenses(lemma string) []*domain.Synset
	Lemmatize(word string) string
}

// Service resolves terms to synset names. It holds no mutable state beyond
// the injected read-only rule tables, so concurrent Resolve calls are safe.
type Service struct {
	log   *slog.Logger
	pages pageProvider
	tax   taxonomy
	rules *rules.Rules
}

// NewService creates a resolver Service.
func NewService(logger *slog.Logger, pages pageProvider, tax taxonomy, r *rules.Rules) *Service {
	return &Service{
		log:   logger.With("service", "resolver"),
		pages: pages,
		tax:   tax,
		rules: r,
	}
}
