package pagescrape

import "context"

// Fetcher retrieves raw page markup from URLs.
type Fetcher interface {
	// Fetch performs a GET against the URL and returns the response body.
	// The context controls timeout and cancellation. Transport errors,
	// timeouts, and error statuses all surface as errors; there is no retry.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
