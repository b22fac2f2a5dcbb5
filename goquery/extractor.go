// Package goquery implements content extraction over parsed HTML using
// github.com/PuerkitoBio/goquery. Each extractor is a pure, read-only
// traversal of the document tree; missing or malformed content always
// degrades to an empty container, never an error.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagescrape"
)

// Ensure Extractor implements pagescrape.Extractor at compile time.
var _ pagescrape.Extractor = (*Extractor)(nil)

// Extractor parses page markup and assembles a ScrapeResult.
type Extractor struct{}

// NewExtractor creates a new goquery-based Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the markup once and runs every extractor against the same
// immutable tree. Parsing is permissive: malformed tags degrade to a
// best-effort tree rather than failing. Extract errors only on an
// unparseable page URL or an unreadable document.
func (e *Extractor) Extract(html string, pageURL string) (*pagescrape.ScrapeResult, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "failed to parse HTML: %v", err)
	}

	return &pagescrape.ScrapeResult{
		URL:        pageURL,
		Metadata:   Metadata(doc),
		Headings:   Headings(doc),
		Paragraphs: Paragraphs(doc),
		Links:      Links(doc, base),
		Images:     Images(doc, base),
		Tables:     Tables(doc),
		Lists:      Lists(doc),
		CodeBlocks: CodeBlocks(doc),
		FullText:   FullText(doc),
	}, nil
}
