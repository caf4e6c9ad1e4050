package provider

// PageData is the structured page record returned by an encyclopedia provider.
// Any field may be empty; extraction treats missing fields as contributing no
// candidate phrases.
type PageData struct {
	Title string
	// Categories in site taxonomy order, namespace prefixes included
	// (e.g. "Category:Rivers of Europe").
	Categories []string
	// Short description, label, and alias terms from the page's term block.
	Descriptions []string
	Labels       []string
	Aliases      []string
	// Extract is the HTML-formatted free-text summary, empty when absent.
	Extract string
}

// SearchResult is one full-text search hit. Only the title is consumed.
type SearchResult struct {
	Title string
}

// SearchResponse is the outcome of a full-text search query.
type SearchResponse struct {
	Results []SearchResult
	// Suggestion is the spelling suggestion offered by the search backend,
	// empty when none was supplied.
	Suggestion string
}
