package firecrawl

// searchRequest is the body sent to the search endpoint.
type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// searchResponse is the envelope returned by the search endpoint.
type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// SearchResult is a single search hit. All fields are optional; missing
// values are filled with defaults at ingest time.
type SearchResult struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Snippet     string `json:"snippet,omitempty"`
	Source      string `json:"source,omitempty"`
	URL         string `json:"url,omitempty"`
}
