// Package extract orchestrates the content extraction pipeline. It
// sequences the bounded readiness wait, content location, cross-boundary
// aggregation, metadata extraction, and normalization, branching to a
// PDF collaborator when one is present and reports the page as a PDF
// document.
package extract

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	gena "github.com/sunes26/Gena"
)

// Defaults for the bounded readiness wait.
const (
	DefaultReadyTimeout      = 3 * time.Second
	DefaultReadyPollInterval = 500 * time.Millisecond
)

// shadowTextThreshold is the minimum number of characters an encapsulated
// sub-tree's text must exceed to be included.
const shadowTextThreshold = 50

// Orchestrator runs extractions against a single document source. Each
// Extract call builds its own intermediate state on a fresh snapshot, so
// concurrent calls are independent: there is no shared mutable state
// between runs and nothing is ever written back to the live document.
//
// An extraction either completes or fails as a whole. There are no
// retries and no partial results; re-requesting is the caller's call.
type Orchestrator struct {
	Source    gena.DocumentSource
	PDF       gena.PDFExtractor // optional; enables the PDF branch
	Locator   gena.ContentLocator
	Metadata  gena.MetadataReader
	Flattener gena.TextFlattener
	Config    gena.Config

	// Readiness wait bounds. Zero values use the defaults.
	ReadyTimeout      time.Duration
	ReadyPollInterval time.Duration
}

// Extract runs a single extraction: format detection, then either the
// PDF branch or the standard branch.
func (o *Orchestrator) Extract(ctx context.Context) (*gena.Result, error) {
	if o.Source == nil {
		return nil, gena.Errorf(gena.EINVALID, "document source required")
	}
	if o.Locator == nil || o.Metadata == nil || o.Flattener == nil {
		return nil, gena.Errorf(gena.EINVALID, "locator, metadata reader, and flattener required")
	}

	if o.PDF != nil && o.PDF.IsPDFPage(ctx) {
		return o.extractPDF(ctx)
	}
	return o.extractStandard(ctx)
}

// extractPDF delegates to the PDF collaborator. Collaborator stats are
// reported verbatim; page counts are merged into the document metadata.
// A failed or empty extraction aborts the run with the collaborator's
// error message — partial PDF text is never returned.
func (o *Orchestrator) extractPDF(ctx context.Context) (*gena.Result, error) {
	pdf, err := o.PDF.ExtractText(ctx)
	if err != nil {
		return nil, err
	}
	if pdf == nil || strings.TrimSpace(pdf.Text) == "" {
		return nil, gena.Errorf(gena.EUNAVAILABLE, "PDF extraction returned no text")
	}

	md := gena.Metadata{Language: "unknown", Keywords: []string{}}
	if snap, serr := o.Source.Snapshot(ctx); serr == nil {
		md = o.Metadata.Read(snap)
	}
	md.IsPDF = true
	md.PDFPages = pdf.ExtractedPages
	md.PDFTotalPages = pdf.TotalPages

	return &gena.Result{
		Content:  pdf.Text,
		Metadata: md,
		Stats: gena.Stats{
			CharCount: pdf.CharCount,
			WordCount: pdf.WordCount,
		},
	}, nil
}

// extractStandard waits for the page to render, locates and filters the
// main content region, aggregates frame and encapsulated sub-tree text,
// and normalizes the joined result. Stats are always computed locally
// from the final content, never trusted from upstream.
func (o *Orchestrator) extractStandard(ctx context.Context) (*gena.Result, error) {
	o.awaitReadiness(ctx)

	snap, err := o.Source.Snapshot(ctx)
	if err != nil {
		return nil, gena.Errorf(gena.EINTERNAL, "document snapshot: %v", err)
	}

	main, err := o.Locator.Locate(snap.HTML)
	if err != nil {
		return nil, err
	}

	joined := gena.JoinSections(main, o.framesText(snap), o.shadowsText(snap))
	content := gena.Normalize(joined, o.Config.MaxContentLength)

	return &gena.Result{
		Content:  content,
		Metadata: o.Metadata.Read(snap),
		Stats: gena.Stats{
			CharCount: utf8.RuneCountInString(content),
			WordCount: gena.CountWords(content),
		},
	}, nil
}
