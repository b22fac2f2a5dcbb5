package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagescrape"
	"golang.org/x/net/html"
)

var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// Metadata extracts the page title and meta tags. The title comes from the
// first title element. Each meta tag contributes a "meta_<name>" entry, with
// the name attribute falling back to property when name is absent. Entries
// missing the resolved name or the content attribute are skipped; duplicate
// names resolve last-wins.
func Metadata(doc *goquery.Document) map[string]string {
	metadata := map[string]string{}

	if title := doc.Find("title").First(); title.Length() > 0 {
		metadata["title"] = strings.TrimSpace(title.Text())
	}

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		name, ok := sel.Attr("name")
		if !ok {
			name, ok = sel.Attr("property")
		}
		content, hasContent := sel.Attr("content")
		if !ok || name == "" || !hasContent {
			return
		}
		metadata["meta_"+name] = content
	})

	return metadata
}

// Headings collects h1..h6 text grouped by level, in document order within
// each level. Levels with no headings are absent from the map.
func Headings(doc *goquery.Document) map[string][]string {
	headings := map[string][]string{}

	for _, tag := range headingTags {
		var texts []string
		doc.Find(tag).Each(func(_ int, sel *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(sel.Text()))
		})
		if len(texts) > 0 {
			headings[tag] = texts
		}
	}

	return headings
}

// Paragraphs returns the trimmed text of every p element in document order.
// Paragraphs with no text contribute an empty entry rather than being
// filtered out.
func Paragraphs(doc *goquery.Document) []string {
	paragraphs := []string{}

	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		paragraphs = append(paragraphs, strings.TrimSpace(sel.Text()))
	})

	return paragraphs
}

// Links extracts every anchor carrying an href attribute. The href is
// resolved against the page URL; anchors without href are skipped entirely.
func Links(doc *goquery.Document, base *url.URL) []pagescrape.Link {
	links := []pagescrape.Link{}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		links = append(links, pagescrape.Link{
			Text:        strings.TrimSpace(sel.Text()),
			URL:         resolveRef(base, href),
			RelativeURL: href,
		})
	})

	return links
}

// Images extracts every img element. Each element yields one entry no
// matter which attributes are present; a missing src stays empty rather
// than resolving to the page URL.
func Images(doc *goquery.Document, base *url.URL) []pagescrape.Image {
	images := []pagescrape.Image{}

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		img := pagescrape.Image{
			Alt:   sel.AttrOr("alt", ""),
			Title: sel.AttrOr("title", ""),
		}
		if src, ok := sel.Attr("src"); ok {
			img.Src = resolveRef(base, src)
		}
		images = append(images, img)
	})

	return images
}

// Tables extracts every table in document order. Headers are read only from
// a thead section (no fallback to the first row). Rows come from tbody when
// present, else from the table itself; loose rows outside an existing tbody
// are ignored. Row cells include both th and td in document order, and rows
// with zero cells are dropped.
func Tables(doc *goquery.Document) []pagescrape.Table {
	tables := []pagescrape.Table{}

	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		t := pagescrape.Table{
			Index:   i,
			Headers: []string{},
			Rows:    [][]string{},
		}

		table.Find("thead").First().Find("th").Each(func(_ int, th *goquery.Selection) {
			t.Headers = append(t.Headers, strings.TrimSpace(th.Text()))
		})

		rows := table
		if tbody := table.Find("tbody").First(); tbody.Length() > 0 {
			rows = tbody
		}
		rows.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			row := []string{}
			tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				row = append(row, strings.TrimSpace(cell.Text()))
			})
			if len(row) > 0 {
				t.Rows = append(t.Rows, row)
			}
		})

		tables = append(tables, t)
	})

	return tables
}

// Lists extracts ordered and unordered lists. Only direct li children count
// toward a list's items, and nested sub-list subtrees are excluded from the
// item text so nested items appear once, in their own entry. Lists with
// zero direct items are dropped.
func Lists(doc *goquery.Document) pagescrape.Lists {
	lists := pagescrape.Lists{
		Ordered:   [][]string{},
		Unordered: [][]string{},
	}

	doc.Find("ol").Each(func(_ int, sel *goquery.Selection) {
		if items := directItems(sel); len(items) > 0 {
			lists.Ordered = append(lists.Ordered, items)
		}
	})
	doc.Find("ul").Each(func(_ int, sel *goquery.Selection) {
		if items := directItems(sel); len(items) > 0 {
			lists.Unordered = append(lists.Unordered, items)
		}
	})

	return lists
}

// CodeBlocks collects pre and code elements into one combined,
// document-order sequence sharing a single index counter. Content is kept
// verbatim: code indentation is semantically meaningful.
func CodeBlocks(doc *goquery.Document) []pagescrape.CodeBlock {
	blocks := []pagescrape.CodeBlock{}

	doc.Find("pre, code").Each(func(i int, sel *goquery.Selection) {
		blocks = append(blocks, pagescrape.CodeBlock{
			Index:   i,
			Kind:    goquery.NodeName(sel),
			Content: sel.Text(),
		})
	})

	return blocks
}

// FullText extracts the whole-document text with script and style content
// excluded, then normalizes whitespace: each line trimmed, blank lines
// dropped, lines rejoined with a single newline. The exclusion is a pure
// traversal that skips script/style subtrees; the shared tree is never
// modified, so extractor order does not matter.
func FullText(doc *goquery.Document) string {
	var b strings.Builder
	for _, node := range doc.Selection.Nodes {
		collectText(node, []string{"script", "style"}, &b)
	}

	lines := strings.Split(b.String(), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}

// directItems collects the trimmed text of a list's direct li children,
// excluding nested ul/ol subtrees.
func directItems(list *goquery.Selection) []string {
	var items []string
	list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		var b strings.Builder
		for _, node := range li.Nodes {
			for c := node.FirstChild; c != nil; c = c.NextSibling {
				collectText(c, []string{"ul", "ol"}, &b)
			}
		}
		items = append(items, strings.TrimSpace(b.String()))
	})
	return items
}

// collectText appends the text content of n to b, skipping any element
// subtree whose tag is in skip.
func collectText(n *html.Node, skip []string, b *strings.Builder) {
	if n.Type == html.ElementNode {
		for _, tag := range skip {
			if n.Data == tag {
				return
			}
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, skip, b)
	}
}

// resolveRef resolves an href against the page URL using RFC 3986 reference
// resolution. An unparseable href degrades to the raw authored value.
func resolveRef(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
