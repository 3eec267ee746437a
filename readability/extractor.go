// Package readability provides an alternative extraction engine backed
// by go-readability's scoring heuristics instead of the selector-driven
// pipeline.
package readability

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/go-shiori/go-readability"
	gena "github.com/sunes26/Gena"
)

// Ensure Extractor implements gena.Extractor at compile time.
var _ gena.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from a page
// snapshot.
type Extractor struct {
	cfg gena.Config
}

// NewExtractor creates a new Extractor.
func NewExtractor(cfg gena.Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract processes the source's snapshot and returns normalized main
// content. Frames and encapsulated sub-trees are not aggregated by this
// engine; that is the pipeline engine's job.
func (e *Extractor) Extract(ctx context.Context, src gena.DocumentSource) (*gena.Result, error) {
	snap, err := src.Snapshot(ctx)
	if err != nil {
		return nil, gena.Errorf(gena.EINTERNAL, "document snapshot: %v", err)
	}
	if strings.TrimSpace(snap.HTML) == "" {
		return nil, gena.Errorf(gena.EINVALID, "empty HTML input")
	}

	var pageURL *url.URL
	if snap.URL != "" {
		pageURL, _ = url.Parse(snap.URL)
	}

	article, err := readability.FromReader(strings.NewReader(snap.HTML), pageURL)
	if err != nil {
		return nil, err
	}

	content := gena.Normalize(article.TextContent, e.cfg.MaxContentLength)

	md := gena.Metadata{
		Title:       article.Title,
		URL:         snap.URL,
		Language:    "unknown",
		Description: article.Excerpt,
		Author:      article.Byline,
		Keywords:    []string{},
	}
	if pageURL != nil {
		md.Domain = pageURL.Hostname()
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
