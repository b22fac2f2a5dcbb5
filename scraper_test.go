package pagescrape_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("fetches then extracts", func(t *testing.T) {
		t.Parallel()

		want := &pagescrape.ScrapeResult{URL: "https://example.com"}

		scraper := &pagescrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					assert.Equal(t, "https://example.com", url)
					return "<html><body>hi</body></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string, pageURL string) (*pagescrape.ScrapeResult, error) {
					assert.Equal(t, "<html><body>hi</body></html>", html)
					assert.Equal(t, "https://example.com", pageURL)
					return want, nil
				},
			},
		}

		got, err := scraper.Scrape(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("rejects empty URL", func(t *testing.T) {
		t.Parallel()

		scraper := &pagescrape.Scraper{}

		_, err := scraper.Scrape(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, pagescrape.EINVALID, pagescrape.ErrorCode(err))
	})

	t.Run("fetch failure aborts before extraction", func(t *testing.T) {
		t.Parallel()

		extracted := false
		scraper := &pagescrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "", pagescrape.Errorf(pagescrape.EUNAVAILABLE, "HTTP 503 for %s", url)
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string, pageURL string) (*pagescrape.ScrapeResult, error) {
					extracted = true
					return nil, nil
				},
			},
		}

		_, err := scraper.Scrape(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, pagescrape.EUNAVAILABLE, pagescrape.ErrorCode(err))
		assert.False(t, extracted)
	})
}
