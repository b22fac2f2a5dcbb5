package pagescrape

import (
	"fmt"
	"strings"
)

// summaryPlaceholder is printed for metadata the page did not carry.
const summaryPlaceholder = "N/A"

// FormatSummary renders the human-readable console summary for a completed
// scrape: the URL, title and description, and per-content-type counts.
func FormatSummary(r *ScrapeResult) string {
	divider := strings.Repeat("=", 60)

	var b strings.Builder
	b.WriteString(divider + "\n")
	b.WriteString("SCRAPING SUMMARY\n")
	b.WriteString(divider + "\n\n")

	fmt.Fprintf(&b, "URL: %s\n\n", r.URL)
	fmt.Fprintf(&b, "Title: %s\n", metadataOr(r, "title"))
	fmt.Fprintf(&b, "Description: %s\n\n", metadataOr(r, "meta_description"))

	fmt.Fprintf(&b, "Headings found: %d\n", r.HeadingCount())
	fmt.Fprintf(&b, "Paragraphs found: %d\n", len(r.Paragraphs))
	fmt.Fprintf(&b, "Links found: %d\n", len(r.Links))
	fmt.Fprintf(&b, "Images found: %d\n", len(r.Images))
	fmt.Fprintf(&b, "Tables found: %d\n", len(r.Tables))
	fmt.Fprintf(&b, "Code blocks found: %d\n", len(r.CodeBlocks))
	fmt.Fprintf(&b, "Lists found: %d\n", r.ListCount())
	fmt.Fprintf(&b, "Total text content: %d characters\n", r.TextLength())

	b.WriteString("\n" + divider + "\n")
	return b.String()
}

func metadataOr(r *ScrapeResult, key string) string {
	if v, ok := r.Metadata[key]; ok && v != "" {
		return v
	}
	return summaryPlaceholder
}
