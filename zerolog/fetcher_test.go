package zerolog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/mock"
	pszerolog "github.com/fwojciec/pagescrape/zerolog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := zerolog.New(&buf)
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := pszerolog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, `"message":"fetch"`)
		assert.Contains(t, output, `"url":"https://example.com/docs"`)
		assert.Contains(t, output, `"bytes":20`)
		assert.Contains(t, output, `"duration":`)
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := zerolog.New(&buf)
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", pagescrape.Errorf(pagescrape.EUNAVAILABLE, "network unreachable")
			},
		}

		fetcher := pszerolog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, `"level":"error"`)
		assert.Contains(t, output, "network unreachable")
	})

	t.Run("close delegates to the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		fetcher := pszerolog.NewLoggingFetcher(inner, zerolog.Nop())

		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}
