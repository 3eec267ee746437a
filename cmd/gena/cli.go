package main

import (
	"context"
	"io"
	"log/slog"

	gena "github.com/sunes26/Gena"
	"github.com/sunes26/Gena/extract"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// OpenSource creates a document source for one URL. The returned
	// close func releases page resources and is always safe to call.
	OpenSource func(ctx context.Context, url string) (gena.DocumentSource, func(), error)

	// NewPDF creates the PDF collaborator for a URL. Nil disables the
	// PDF branch of the pipeline engine.
	NewPDF func(url string) gena.PDFExtractor

	Limiter *extract.DomainLimiter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" default:"withargs" help:"Extract readable article text from web pages"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string `arg:"" help:"Page URLs to extract"`
	Engine      string   `default:"pipeline" enum:"pipeline,readability,trafilatura" help:"Extraction engine (${enum})"`
	Browser     bool     `short:"b" help:"Render pages in a headless browser before extracting"`
	MinLength   int      `default:"100" help:"Minimum character count for a content candidate"`
	MaxLength   int      `default:"50000" help:"Maximum extracted content length in characters"`
	JSON        bool     `help:"Emit one JSON envelope per URL"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent extraction limit"`
	RPS         float64  `default:"1.0" help:"Per-domain request rate limit"`
	Verbose     bool     `short:"v" help:"Enable debug logging"`
}
