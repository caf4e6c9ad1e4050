package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wikisynset/internal/domain"
)

// Resolve maps term to the name of the best-matching WordNet noun synset.
// It returns domain.ErrNoMatch when neither the direct title lookup nor the
// search fallback yields a synset.
func (s *Service) Resolve(ctx context.Context, term string) (string, error) {
	term = domain.NormalizeTerm(term)
	if term == "" {
		return "", domain.NewValidationError("term", "required")
	}

	page, err := s.pages.FetchPage(ctx, term)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", term, err)
	}

	if name, ok := s.matchFirstSynset(s.extractCandidatePhrases(page)); ok {
		s.log.DebugContext(ctx, "resolved via direct lookup",
			slog.String("term", term),
			slog.String("synset", name),
		)
		return name, nil
	}

	return s.resolveViaSearch(ctx, term)
}

// resolveViaSearch is the fallback path: a full-text search with at most one
// spelling-suggestion retry, a title-similarity gate on each result, and a
// fresh lookup+extract+match per surviving candidate, first hit wins.
func (s *Service) resolveViaSearch(ctx context.Context, term string) (string, error) {
	found, err := s.pages.Search(ctx, term)
	if err != nil {
		return "", fmt.Errorf("search %q: %w", term, err)
	}

	if found != nil && len(found.Results) == 0 && found.Suggestion != "" {
		s.log.DebugContext(ctx, "retrying search with suggestion",
			slog.String("term", term),
			slog.String("suggestion", found.Suggestion),
		)
		found, err = s.pages.Search(ctx, found.Suggestion)
		if err != nil {
			return "", fmt.Errorf("search suggestion for %q: %w", term, err)
		}
	}

	if found == nil {
		return "", domain.ErrNoMatch
	}

	for _, hit := range found.Results {
		if !titleCloseEnough(term, hit.Title) {
			continue
		}

		page, err := s.pages.FetchPage(ctx, hit.Title)
		if err != nil {
			return "", fmt.Errorf("fetch search result %q: %w", hit.Title, err)
		}

		if name, ok := s.matchFirstSynset(s.extractCandidatePhrases(page)); ok {
			s.log.DebugContext(ctx, "resolved via search fallback",
				slog.String("term", term),
				slog.String("title", hit.Title),
				slog.String("synset", name),
			)
			return name, nil
		}
	}

	return "", domain.ErrNoMatch
}
