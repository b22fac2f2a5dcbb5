// Package fs provides file-based output for scrape results.
package fs

import (
	"bytes"
	"encoding/json"
	"net/url"
	"os"

	"github.com/fwojciec/pagescrape"
)

// DefaultFilename derives the output filename from the page URL's host.
// Example: https://example.com/docs → example.com_scraped_data.json
func DefaultFilename(pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", pagescrape.Errorf(pagescrape.EINVALID, "invalid page URL: %v", err)
	}
	return u.Host + "_scraped_data.json", nil
}

// Ensure Writer implements pagescrape.ResultWriter at compile time.
var _ pagescrape.ResultWriter = (*Writer)(nil)

// Writer writes scrape results as pretty-printed JSON files.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes the result to the named file as indented UTF-8 JSON.
// HTML escaping is disabled so non-ASCII characters and markup fragments in
// the extracted content stay literal. The result is encoded fully in memory
// before the file is touched, so a write failure never loses it.
func (w *Writer) Write(result *pagescrape.ScrapeResult, filename string) error {
	if err := result.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return pagescrape.Errorf(pagescrape.EINTERNAL, "failed to encode result: %v", err)
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return pagescrape.Errorf(pagescrape.EINTERNAL, "failed to write %s: %v", filename, err)
	}

	return nil
}
