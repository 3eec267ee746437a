package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	gena "github.com/sunes26/Gena"
	"github.com/sunes26/Gena/goquery"
	"github.com/sunes26/Gena/readability"
	genaslog "github.com/sunes26/Gena/slog"
	"github.com/sunes26/Gena/trafilatura"
	"golang.org/x/sync/errgroup"
)

// envelope is the per-URL output record.
type envelope struct {
	Success  bool           `json:"success"`
	URL      string         `json:"url"`
	Content  string         `json:"content,omitempty"`
	Metadata *gena.Metadata `json:"metadata,omitempty"`
	Stats    *gena.Stats    `json:"stats,omitempty"`
	Error    *envelopeError `json:"error,omitempty"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e envelope) fail(err error) envelope {
	e.Error = &envelopeError{
		Code:    gena.ErrorCode(err),
		Message: gena.ErrorMessage(err),
	}
	return e
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	// Results are indexed by input position so output order matches
	// argument order regardless of completion order.
	results := make([]envelope, len(c.URLs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, pageURL := range c.URLs {
		g.Go(func() error {
			results[i] = c.extractOne(ctx, deps, pageURL)
			return nil
		})
	}
	_ = g.Wait() // workers report failures through their envelope

	failed := 0
	enc := json.NewEncoder(deps.Stdout)
	for i, env := range results {
		if !env.Success {
			failed++
		}

		if c.JSON {
			if err := enc.Encode(env); err != nil {
				return err
			}
			continue
		}

		if !env.Success {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", env.URL, env.Error.Message)
			continue
		}
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			fmt.Fprintf(deps.Stdout, "== %s ==\n", env.URL)
		}
		fmt.Fprintln(deps.Stdout, env.Content)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d extractions failed", failed, len(results))
	}
	return nil
}

func (c *ExtractCmd) extractOne(ctx context.Context, deps *Dependencies, pageURL string) envelope {
	env := envelope{URL: pageURL}

	if deps.Limiter != nil {
		if u, err := url.Parse(pageURL); err == nil && u.Hostname() != "" {
			if err := deps.Limiter.Wait(ctx, u.Hostname()); err != nil {
				return env.fail(err)
			}
		}
	}

	source, closeSource, err := deps.OpenSource(ctx, pageURL)
	if err != nil {
		return env.fail(err)
	}
	defer closeSource()

	result, err := c.extractor(deps, pageURL).Extract(ctx, source)
	if err != nil {
		return env.fail(err)
	}

	env.Success = true
	env.Content = result.Content
	env.Metadata = &result.Metadata
	env.Stats = &result.Stats
	return env
}

// extractor builds the engine selected by --engine for one URL.
func (c *ExtractCmd) extractor(deps *Dependencies, pageURL string) gena.Extractor {
	cfg := gena.Config{
		MinContentLength: c.MinLength,
		MaxContentLength: c.MaxLength,
	}

	var inner gena.Extractor
	switch c.Engine {
	case "readability":
		inner = readability.NewExtractor(cfg)
	case "trafilatura":
		inner = trafilatura.NewExtractor(cfg)
	default:
		var opts []goquery.Option
		if deps.NewPDF != nil {
			opts = append(opts, goquery.WithPDF(deps.NewPDF(pageURL)))
		}
		inner = goquery.NewPipeline(cfg, opts...)
	}

	return genaslog.NewLoggingExtractor(inner, c.Engine, deps.Logger)
}
