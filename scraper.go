package pagescrape

import "context"

// Scraper sequences one scrape run: fetch the page once, then hand the
// markup to the Extractor. A fetch failure aborts the run; extraction
// itself never fails on missing content.
type Scraper struct {
	Fetcher   Fetcher
	Extractor Extractor
}

// Scrape runs the pipeline for a single page. The context bounds the fetch;
// there is no other I/O wait.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) (*ScrapeResult, error) {
	if pageURL == "" {
		return nil, Errorf(EINVALID, "page URL required")
	}

	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	return s.Extractor.Extract(html, pageURL)
}
