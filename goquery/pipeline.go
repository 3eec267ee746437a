// Package goquery implements the DOM-level extraction machinery: the
// staged noise filter, the candidate content locator, metadata reading,
// and text flattening, all over goquery parse trees. Parsing the
// snapshot markup is itself the deep copy that keeps the live document
// untouched.
package goquery

import (
	"context"
	"time"

	gena "github.com/sunes26/Gena"
	"github.com/sunes26/Gena/extract"
)

// Ensure Pipeline implements gena.Extractor at compile time.
var _ gena.Extractor = (*Pipeline)(nil)

// Pipeline is the default extraction engine: the staged noise-filtering
// pipeline driven by an extract.Orchestrator. An optional PDF
// collaborator enables the PDF branch.
type Pipeline struct {
	cfg           gena.Config
	pdf           gena.PDFExtractor
	readyTimeout  time.Duration
	readyInterval time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithPDF attaches a PDF collaborator, enabling the PDF branch when the
// collaborator reports the page as a PDF document.
func WithPDF(pdf gena.PDFExtractor) Option {
	return func(p *Pipeline) {
		p.pdf = pdf
	}
}

// WithReadiness overrides the bounded readiness wait's timeout and poll
// interval. Zero values keep the defaults.
func WithReadiness(timeout, interval time.Duration) Option {
	return func(p *Pipeline) {
		p.readyTimeout = timeout
		p.readyInterval = interval
	}
}

// NewPipeline creates the default extraction engine for the given config.
func NewPipeline(cfg gena.Config, opts ...Option) *Pipeline {
	p := &Pipeline{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Extract runs a full extraction over src.
func (p *Pipeline) Extract(ctx context.Context, src gena.DocumentSource) (*gena.Result, error) {
	o := &extract.Orchestrator{
		Source:            src,
		PDF:               p.pdf,
		Locator:           NewLocator(p.cfg),
		Metadata:          NewMetadataReader(),
		Flattener:         NewFlattener(),
		Config:            p.cfg,
		ReadyTimeout:      p.readyTimeout,
		ReadyPollInterval: p.readyInterval,
	}
	return o.Extract(ctx)
}
