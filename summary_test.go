package pagescrape_test

import (
	"testing"

	"github.com/fwojciec/pagescrape"
	"github.com/stretchr/testify/assert"
)

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	r := &pagescrape.ScrapeResult{
		URL: "https://example.com",
		Metadata: map[string]string{
			"title":            "Example Domain",
			"meta_description": "Illustrative examples",
		},
		Headings:   map[string][]string{"h1": {"Example Domain"}},
		Paragraphs: []string{"This domain is for use in examples."},
		Links:      []pagescrape.Link{{Text: "More", URL: "https://iana.org", RelativeURL: "https://iana.org"}},
		Lists:      pagescrape.Lists{Ordered: [][]string{{"a"}}, Unordered: [][]string{{"b"}, {"c"}}},
		FullText:   "Example Domain",
	}

	out := pagescrape.FormatSummary(r)

	assert.Contains(t, out, "SCRAPING SUMMARY")
	assert.Contains(t, out, "URL: https://example.com")
	assert.Contains(t, out, "Title: Example Domain")
	assert.Contains(t, out, "Description: Illustrative examples")
	assert.Contains(t, out, "Headings found: 1")
	assert.Contains(t, out, "Paragraphs found: 1")
	assert.Contains(t, out, "Links found: 1")
	assert.Contains(t, out, "Lists found: 3")
	assert.Contains(t, out, "Total text content: 14 characters")
}

func TestFormatSummary_EmptyPage(t *testing.T) {
	t.Parallel()

	out := pagescrape.FormatSummary(&pagescrape.ScrapeResult{URL: "https://example.com"})

	assert.Contains(t, out, "Title: N/A")
	assert.Contains(t, out, "Description: N/A")
	assert.Contains(t, out, "Headings found: 0")
	assert.Contains(t, out, "Paragraphs found: 0")
	assert.Contains(t, out, "Links found: 0")
	assert.Contains(t, out, "Images found: 0")
	assert.Contains(t, out, "Tables found: 0")
	assert.Contains(t, out, "Code blocks found: 0")
	assert.Contains(t, out, "Lists found: 0")
	assert.Contains(t, out, "Total text content: 0 characters")
}
