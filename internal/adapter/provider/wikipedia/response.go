package wikipedia

// Types for the MediaWiki action=query JSON responses. Only the fields the
// resolver consumes are declared.

type apiResponse struct {
	Query apiQuery `json:"query"`
}

type apiQuery struct {
	// Pages is keyed by page id ("-1" for a missing title).
	Pages      map[string]apiPage `json:"pages"`
	Search     []apiSearchHit     `json:"search"`
	SearchInfo apiSearchInfo      `json:"searchinfo"`
}

type apiPage struct {
	PageID int    `json:"pageid"`
	Title  string `json:"title"`
	// Missing is present (as an empty string) when the title does not exist.
	Missing    *string       `json:"missing"`
	Categories []apiCategory `json:"categories"`
	// Terms is nil when the page has no pageterms block.
	Terms   *apiTerms `json:"terms"`
	Extract string    `json:"extract"`
}

type apiCategory struct {
	Title string `json:"title"`
}

type apiTerms struct {
	Description []string `json:"description"`
	Label       []string `json:"label"`
	Alias       []string `json:"alias"`
}

type apiSearchHit struct {
	Title string `json:"title"`
}

type apiSearchInfo struct {
	Suggestion string `json:"suggestion"`
}
