// Package trafilatura provides an alternative extraction engine backed
// by go-trafilatura.
package trafilatura

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/markusmobius/go-trafilatura"
	gena "github.com/sunes26/Gena"
	"golang.org/x/net/html"
)

// Ensure Extractor implements gena.Extractor at compile time.
var _ gena.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from a page
// snapshot.
type Extractor struct {
	cfg gena.Config
}

// NewExtractor creates a new Extractor.
func NewExtractor(cfg gena.Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract processes the source's snapshot and returns normalized main
// content with trafilatura's own metadata mapped onto the result.
func (e *Extractor) Extract(ctx context.Context, src gena.DocumentSource) (*gena.Result, error) {
	snap, err := src.Snapshot(ctx)
	if err != nil {
		return nil, gena.Errorf(gena.EINTERNAL, "document snapshot: %v", err)
	}
	if strings.TrimSpace(snap.HTML) == "" {
		return nil, gena.Errorf(gena.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{EnableFallback: true}
	if snap.URL != "" {
		if u, perr := url.Parse(snap.URL); perr == nil {
			opts.OriginalURL = u
		}
	}

	result, err := trafilatura.Extract(strings.NewReader(snap.HTML), opts)
	if err != nil {
		return nil, err
	}

	var text string
	if result.ContentNode != nil {
		text = nodeText(result.ContentNode)
	}
	content := gena.Normalize(text, e.cfg.MaxContentLength)

	md := gena.Metadata{
		Title:       result.Metadata.Title,
		URL:         snap.URL,
		Language:    "unknown",
		Description: result.Metadata.Description,
		Author:      result.Metadata.Author,
		Keywords:    []string{},
	}
	if len(result.Metadata.Tags) > 0 {
		md.Keywords = result.Metadata.Tags
	}
	if result.Metadata.Hostname != "" {
		md.Domain = result.Metadata.Hostname
	} else if opts.OriginalURL != nil {
		md.Domain = opts.OriginalURL.Hostname()
	}

	return &gena.Result{
		Content:  content,
		Metadata: md,
		Stats: gena.Stats{
			CharCount: utf8.RuneCountInString(content),
			WordCount: gena.CountWords(content),
		},
	}, nil
}

// nodeText flattens an html.Node to text, breaking lines at paragraph
// boundaries.
func nodeText(n *html.Node) string {
	var buf bytes.Buffer
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6", "br", "table":
				buf.WriteByte('\n')
			}
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}
