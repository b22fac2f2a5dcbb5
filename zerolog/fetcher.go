// Package zerolog provides logging decorators for pagescrape interfaces.
package zerolog

import (
	"context"
	"time"

	"github.com/fwojciec/pagescrape"
	"github.com/rs/zerolog"
)

// Ensure LoggingFetcher implements pagescrape.Fetcher.
var _ pagescrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   pagescrape.Fetcher
	logger zerolog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pagescrape.Fetcher, logger zerolog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		evt := f.logger.Info()
		if err != nil {
			evt = f.logger.Error().Err(err)
		}
		evt.Str("url", url).
			Int("bytes", len(html)).
			Dur("duration", time.Since(begin)).
			Msg("fetch")
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
