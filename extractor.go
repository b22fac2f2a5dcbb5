package pagescrape

// Extractor turns raw page markup into a structured ScrapeResult.
// Implementations parse the markup once and run every content extractor
// against the same immutable tree.
type Extractor interface {
	// Extract parses html and extracts all content types. pageURL is the
	// base for resolving relative link and image references.
	//
	// Missing or malformed content never fails extraction: a page with zero
	// tables yields an empty Tables slice, not an error. Extract fails only
	// when pageURL is unparseable or the markup cannot be read at all.
	Extract(html string, pageURL string) (*ScrapeResult, error)
}
