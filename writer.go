package pagescrape

// ResultWriter persists a ScrapeResult.
type ResultWriter interface {
	// Write serializes the result to the named file. A write failure never
	// corrupts the in-memory result.
	Write(result *ScrapeResult, filename string) error
}
