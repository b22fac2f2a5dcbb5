package pagescrape

import "unicode/utf8"

// ScrapeResult is the aggregate record for one scraped page. Every field is
// always present, possibly empty, never nil: an extractor finding nothing
// yields an empty container, not a missing field. The record is assembled
// once by the Scraper after all extractors complete and is immutable
// thereafter.
type ScrapeResult struct {
	URL        string              `json:"url"`
	Metadata   map[string]string   `json:"metadata"`
	Headings   map[string][]string `json:"headings"`
	Paragraphs []string            `json:"paragraphs"`
	Links      []Link              `json:"links"`
	Images     []Image             `json:"images"`
	Tables     []Table             `json:"tables"`
	Lists      Lists               `json:"lists"`
	CodeBlocks []CodeBlock         `json:"code_blocks"`
	FullText   string              `json:"full_text"`
}

// Validate returns an error if the result is not writable.
func (r *ScrapeResult) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "scrape result URL required")
	}
	return nil
}

// HeadingCount returns the number of headings across all levels.
func (r *ScrapeResult) HeadingCount() int {
	n := 0
	for _, texts := range r.Headings {
		n += len(texts)
	}
	return n
}

// ListCount returns the combined number of ordered and unordered lists.
func (r *ScrapeResult) ListCount() int {
	return len(r.Lists.Ordered) + len(r.Lists.Unordered)
}

// TextLength returns the character length of the full text.
func (r *ScrapeResult) TextLength() int {
	return utf8.RuneCountInString(r.FullText)
}

// Link is one anchor element carrying an href attribute. URL is the href
// resolved against the page URL; RelativeURL is the href as authored.
type Link struct {
	Text        string `json:"text"`
	URL         string `json:"url"`
	RelativeURL string `json:"relative_url"`
}

// Image is one image element. Src is resolved against the page URL and
// stays empty when the element has no src attribute.
type Image struct {
	Alt   string `json:"alt"`
	Src   string `json:"src"`
	Title string `json:"title"`
}

// Table is one table element in document order. Headers come only from a
// thead section; Rows come from tbody when present, else from the table
// itself.
type Table struct {
	Index   int        `json:"index"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Lists groups the page's ordered and unordered lists. Each inner slice
// holds the text of one list's direct items only; nested sub-lists appear
// as their own entries.
type Lists struct {
	Ordered   [][]string `json:"ordered"`
	Unordered [][]string `json:"unordered"`
}

// CodeBlock is one pre or code element. Pre and code share a single
// document-order index space. Content is verbatim: code whitespace is
// semantically meaningful and is never trimmed.
type CodeBlock struct {
	Index   int    `json:"index"`
	Kind    string `json:"kind"`
	Content string `json:"content"`
}
