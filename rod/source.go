// Package rod provides a live-page document source using Chrome browser
// automation. It captures rendered markup, readable embedded frames, and
// one level of open shadow roots into page snapshots.
package rod

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	gena "github.com/sunes26/Gena"
)

// Browser owns a headless Chrome instance and opens page sources.
// Browser is safe for concurrent use by multiple goroutines.
type Browser struct {
	browser *rod.Browser
}

// NewBrowser launches a headless Chrome browser. Close must be called
// when the Browser is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser() (*Browser, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Browser{browser: browser}, nil
}

// Open navigates a new page to the URL and returns a document source
// over it. The caller must Close the source.
func (b *Browser) Open(ctx context.Context, pageURL string) (*Source, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	page = page.Context(ctx)

	if err := page.Navigate(pageURL); err != nil {
		page.Close()
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		page.Close()
		return nil, err
	}

	return &Source{page: page, url: pageURL}, nil
}

// Close releases browser resources.
func (b *Browser) Close() error {
	return b.browser.Close()
}

// Ensure Source implements gena.DocumentSource at compile time.
var _ gena.DocumentSource = (*Source)(nil)

// Source is a document source over a live browser page. Successive
// snapshots observe the page as it renders; nothing is ever written back
// to it.
type Source struct {
	page *rod.Page
	url  string
}

// Snapshot captures the page's current markup, readable frames, and one
// level of open shadow roots. Frames and shadow roots the page refuses
// to expose (cross-origin, closed) are silently skipped.
func (s *Source) Snapshot(ctx context.Context) (*gena.Snapshot, error) {
	page := s.page.Context(ctx)

	html, err := page.HTML()
	if err != nil {
		return nil, gena.Errorf(gena.EUNAVAILABLE, "reading page HTML: %v", err)
	}

	return &gena.Snapshot{
		URL:     s.url,
		HTML:    html,
		Frames:  s.frames(page),
		Shadows: s.shadows(page),
	}, nil
}

// frames reads each embedded frame's nested document. Cross-origin
// access failures are expected and skipped without logging.
func (s *Source) frames(page *rod.Page) []gena.Frame {
	elements, err := page.Elements("iframe, frame")
	if err != nil {
		return nil
	}

	var frames []gena.Frame
	for _, el := range elements {
		framePage, err := el.Frame()
		if err != nil {
			continue
		}
		html, err := framePage.HTML()
		if err != nil {
			continue
		}
		frameURL := ""
		if info, err := framePage.Info(); err == nil {
			frameURL = info.URL
		}
		frames = append(frames, gena.Frame{URL: frameURL, HTML: html})
	}
	return frames
}

// shadowCollectJS gathers one level of open shadow roots in document
// order. Nested shadow roots are not descended into.
const shadowCollectJS = `() => {
	const out = [];
	for (const el of document.querySelectorAll('*')) {
		if (el.shadowRoot) {
			out.push({host: el.tagName.toLowerCase(), html: el.shadowRoot.innerHTML});
		}
	}
	return out;
}`

func (s *Source) shadows(page *rod.Page) []gena.ShadowTree {
	obj, err := page.Eval(shadowCollectJS)
	if err != nil {
		return nil
	}

	var shadows []gena.ShadowTree
	for _, item := range obj.Value.Arr() {
		html := item.Get("html").Str()
		if html == "" {
			continue
		}
		shadows = append(shadows, gena.ShadowTree{
			Host: item.Get("host").Str(),
			HTML: html,
		})
	}
	return shadows
}

// pdfProbeJS detects Chrome's built-in PDF viewer.
const pdfProbeJS = `() => {
	return document.querySelector('embed[type="application/pdf"]') !== null ||
		document.contentType === 'application/pdf';
}`

// IsPDFPage reports whether the page is displaying a PDF document,
// either by URL extension or via Chrome's PDF viewer.
func (s *Source) IsPDFPage(ctx context.Context) bool {
	if isPDFURL(s.url) {
		return true
	}
	obj, err := s.page.Context(ctx).Eval(pdfProbeJS)
	if err != nil {
		return false
	}
	return obj.Value.Bool()
}

// Close closes the page. The owning Browser stays usable.
func (s *Source) Close() error {
	return s.page.Close()
}

// isPDFURL reports whether the URL path ends in .pdf.
func isPDFURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return strings.HasSuffix(strings.ToLower(raw), ".pdf")
	}
	return strings.HasSuffix(strings.ToLower(u.Path), ".pdf")
}
