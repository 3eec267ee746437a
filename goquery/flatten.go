package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	gena "github.com/sunes26/Gena"
	"golang.org/x/net/html"
)

// Ensure Flattener implements gena.TextFlattener at compile time.
var _ gena.TextFlattener = (*Flattener)(nil)

// Flattener converts HTML fragments to plain text with line breaks at
// block boundaries. It applies no noise filtering; frame and shadow
// sub-tree content passes through it with only a length threshold, which
// is an intentional scope limit.
type Flattener struct{}

// NewFlattener creates a new Flattener.
func NewFlattener() *Flattener {
	return &Flattener{}
}

// Flatten parses fragment and returns its text content. Unparseable
// input yields an empty string.
func (f *Flattener) Flatten(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	return Text(doc.Selection)
}

// blockTags are elements that introduce a line break when flattening.
var blockTags = map[string]bool{
	"address": true, "article": true, "blockquote": true, "br": true,
	"div": true, "dd": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "td": true,
	"th": true, "tr": true, "ul": true,
}

// Text returns the selection's text with newlines at block boundaries,
// trimmed of surrounding whitespace. Unlike goquery's Text, paragraphs
// do not run together on a single line.
func Text(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		writeText(n, &sb)
	}
	return strings.TrimSpace(sb.String())
}

func writeText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if blockTags[n.Data] {
			sb.WriteByte('\n')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, sb)
	}
	if n.Type == html.ElementNode && blockTags[n.Data] {
		sb.WriteByte('\n')
	}
}
