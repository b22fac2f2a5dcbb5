package mock

import "github.com/fwojciec/pagescrape"

var _ pagescrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagescrape.Extractor.
type Extractor struct {
	ExtractFn func(html string, pageURL string) (*pagescrape.ScrapeResult, error)
}

func (e *Extractor) Extract(html string, pageURL string) (*pagescrape.ScrapeResult, error) {
	return e.ExtractFn(html, pageURL)
}
