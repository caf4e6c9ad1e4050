package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/wikisynset/internal/config"
	"github.com/heartmarshall/wikisynset/internal/provider"
)

const defaultBaseURL = "https://en.wikipedia.org/w/api.php"

// RetryPolicy bounds the fixed-delay retry loop around API calls. The delay
// is constant between attempts, not exponential.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetryPolicy matches the service defaults: ten attempts, two seconds
// apart.
var DefaultRetryPolicy = RetryPolicy{Attempts: 10, Delay: 2 * time.Second}

// errRetriesExhausted marks a lookup that failed on every attempt. It never
// leaves this package: callers receive a "no data" result instead.
var errRetriesExhausted = errors.New("retries exhausted")

// Client fetches structured page data from the MediaWiki API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retry      RetryPolicy
	sleep      func(time.Duration)
	log        *slog.Logger
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.WikipediaConfig, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		retry:      normalizeRetry(RetryPolicy{Attempts: cfg.RetryAttempts, Delay: cfg.RetryDelay}),
		sleep:      time.Sleep,
		log:        logger.With("adapter", "wikipedia"),
	}
}

// NewClientWithURL creates a Client with a custom endpoint and retry policy
// (for testing).
func NewClientWithURL(baseURL string, retry RetryPolicy, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retry:      normalizeRetry(retry),
		sleep:      time.Sleep,
		log:        logger.With("adapter", "wikipedia"),
	}
}

func normalizeRetry(retry RetryPolicy) RetryPolicy {
	if retry.Attempts < 1 {
		retry.Attempts = 1
	}
	return retry
}

// FetchPage fetches categories, page terms, and the HTML extract for a page
// title. It returns nil, nil when the title does not exist, when the page
// carries no term block, or when every retry attempt failed (degraded "no
// data" outcome).
func (c *Client) FetchPage(ctx context.Context, title string) (*provider.PageData, error) {
	params := url.Values{
		"format": {"json"},
		"action": {"query"},
		"titles": {title},
		"prop":   {"categories|pageterms|extracts"},
	}

	c.log.DebugContext(ctx, "wikipedia page request", slog.String("title", title))

	resp, err := c.get(ctx, params)
	if errors.Is(err, errRetriesExhausted) {
		c.log.WarnContext(ctx, "wikipedia page lookup degraded to no data",
			slog.String("title", title))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("wikipedia: fetch page %q: %w", title, err)
	}

	page := singlePage(resp)
	if page == nil || page.Missing != nil || page.Terms == nil {
		return nil, nil
	}

	data := &provider.PageData{
		Title:        page.Title,
		Descriptions: page.Terms.Description,
		Labels:       page.Terms.Label,
		Aliases:      page.Terms.Alias,
		Extract:      page.Extract,
	}
	for _, cat := range page.Categories {
		data.Categories = append(data.Categories, cat.Title)
	}

	c.log.DebugContext(ctx, "wikipedia page response",
		slog.String("title", title),
		slog.Int("categories", len(data.Categories)),
		slog.Bool("extract", data.Extract != ""),
	)

	return data, nil
}

// Search runs a full-text search. It returns nil, nil when every retry
// attempt failed.
func (c *Client) Search(ctx context.Context, query string) (*provider.SearchResponse, error) {
	params := url.Values{
		"format":   {"json"},
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {query},
	}

	c.log.DebugContext(ctx, "wikipedia search request", slog.String("query", query))

	resp, err := c.get(ctx, params)
	if errors.Is(err, errRetriesExhausted) {
		c.log.WarnContext(ctx, "wikipedia search degraded to no data",
			slog.String("query", query))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("wikipedia: search %q: %w", query, err)
	}

	result := &provider.SearchResponse{
		Suggestion: resp.Query.SearchInfo.Suggestion,
	}
	for _, hit := range resp.Query.Search {
		result.Results = append(result.Results, provider.SearchResult{Title: hit.Title})
	}

	c.log.DebugContext(ctx, "wikipedia search response",
		slog.String("query", query),
		slog.Int("results", len(result.Results)),
		slog.Bool("suggestion", result.Suggestion != ""),
	)

	return result, nil
}

// get performs the API request with the bounded fixed-delay retry loop.
// Transport errors and non-200 statuses are retried; a malformed body is not.
func (c *Client) get(ctx context.Context, params url.Values) (*apiResponse, error) {
	reqURL := c.baseURL + "?" + params.Encode()

	var lastErr error
	for attempt := 1; attempt <= c.retry.Attempts; attempt++ {
		if attempt > 1 {
			c.sleep(c.retry.Delay)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		body, err := c.doOnce(ctx, reqURL)
		if err != nil {
			lastErr = err
			c.log.WarnContext(ctx, "wikipedia request retry",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
			continue
		}

		var resp apiResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return &resp, nil
	}

	c.log.ErrorContext(ctx, "wikipedia request failed on all attempts",
		slog.Int("attempts", c.retry.Attempts),
		slog.String("error", lastErr.Error()),
	)
	return nil, errRetriesExhausted
}

func (c *Client) doOnce(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// singlePage returns the lone page record of a title query. Multi-page
// responses are not produced by single-title lookups; if one ever appears,
// only one page is considered.
func singlePage(resp *apiResponse) *apiPage {
	for _, page := range resp.Query.Pages {
		p := page
		return &p
	}
	return nil
}
