// Package http provides an HTTP-based document source for static sites
// that don't require JavaScript rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	gena "github.com/sunes26/Gena"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Source implements gena.DocumentSource at compile time.
var _ gena.DocumentSource = (*Source)(nil)

// Source retrieves page snapshots over plain HTTP. Unlike rod.Source it
// does not execute JavaScript: the snapshot is the markup the server
// served, plus same-origin frames fetched separately and declarative
// shadow roots found inline.
//
// Snapshots are fetched once and cached; a Source observes a single
// point in time and never changes between calls.
type Source struct {
	client  *http.Client
	timeout time.Duration
	url     string

	once     sync.Once
	snapshot *gena.Snapshot
	err      error
}

// Option configures a Source.
type Option func(*Source)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.timeout = d
	}
}

// NewSource creates a document source for the given URL.
func NewSource(pageURL string, opts ...Option) *Source {
	s := &Source{
		url:     pageURL,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// Snapshot fetches the page and returns its snapshot. Same-origin
// frames that fail to fetch are silently skipped.
func (s *Source) Snapshot(ctx context.Context) (*gena.Snapshot, error) {
	s.once.Do(func() {
		s.snapshot, s.err = s.fetchSnapshot(ctx)
	})
	return s.snapshot, s.err
}

func (s *Source) fetchSnapshot(ctx context.Context) (*gena.Snapshot, error) {
	html, err := s.fetch(ctx, s.url)
	if err != nil {
		return nil, gena.Errorf(gena.EUNAVAILABLE, "fetching %s: %v", s.url, err)
	}

	snapshot := &gena.Snapshot{
		URL:  s.url,
		HTML: html,
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return snapshot, nil
	}

	snapshot.Frames = s.fetchFrames(ctx, doc)
	snapshot.Shadows = declaredShadows(doc)

	return snapshot, nil
}

// fetchFrames fetches same-origin iframe documents. Cross-origin frames
// and fetch failures are skipped; a static source has no way to read
// what the browser would sandbox anyway.
func (s *Source) fetchFrames(ctx context.Context, doc *goquery.Document) []gena.Frame {
	base, err := url.Parse(s.url)
	if err != nil {
		return nil
	}

	var frames []gena.Frame
	doc.Find("iframe[src], frame[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		ref, err := url.Parse(src)
		if err != nil {
			return
		}
		frameURL := base.ResolveReference(ref)
		if frameURL.Hostname() != base.Hostname() {
			return
		}
		html, err := s.fetch(ctx, frameURL.String())
		if err != nil {
			return
		}
		frames = append(frames, gena.Frame{URL: frameURL.String(), HTML: html})
	})
	return frames
}

// declaredShadows surfaces declarative shadow DOM templates
// (<template shadowrootmode="open">) as shadow trees.
func declaredShadows(doc *goquery.Document) []gena.ShadowTree {
	var shadows []gena.ShadowTree
	doc.Find(`template[shadowrootmode="open"]`).Each(func(_ int, sel *goquery.Selection) {
		html, err := sel.Html()
		if err != nil || html == "" {
			return
		}
		host := goquery.NodeName(sel.Parent())
		shadows = append(shadows, gena.ShadowTree{Host: host, HTML: html})
	})
	return shadows
}

func (s *Source) fetch(ctx context.Context, fetchURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, fetchURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP source this is a no-op since
// http.Client doesn't require explicit cleanup.
func (s *Source) Close() error {
	return nil
}
