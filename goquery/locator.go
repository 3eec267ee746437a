package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	gena "github.com/sunes26/Gena"
)

// Ensure Locator implements gena.ContentLocator at compile time.
var _ gena.ContentLocator = (*Locator)(nil)

// Locator selects the best candidate content region of a page by walking
// an ordered selector priority list. There is no scoring: the first
// selector whose noise-filtered text exceeds the minimum content length
// wins, and the document body is the fallback when none qualify.
type Locator struct {
	minContentLength int
}

// NewLocator creates a Locator with the config's minimum content length.
func NewLocator(cfg gena.Config) *Locator {
	return &Locator{minContentLength: cfg.MinContentLength}
}

// Locate parses htmlStr and returns the noise-filtered text of the
// selected content region. Absence of a qualifying region is not an
// error; the body's filtered text is returned instead.
func (l *Locator) Locate(htmlStr string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return "", gena.Errorf(gena.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, s := range candidateSelectors {
		matcher, err := cascadia.Compile(s)
		if err != nil {
			continue
		}
		region := doc.FindMatcher(matcher).First()
		if region.Length() == 0 {
			continue
		}
		text := FilterToText(region)
		if utf8.RuneCountInString(text) > l.minContentLength {
			return text, nil
		}
	}

	if body := doc.Find("body").First(); body.Length() > 0 {
		return FilterToText(body), nil
	}
	return FilterToText(doc.Selection), nil
}

// Ready reports whether any readiness candidate currently holds more
// than minLen characters of raw text. Used while a page is still
// rendering; unparseable markup reads as not ready.
func (l *Locator) Ready(htmlStr string, minLen int) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return false
	}
	for _, s := range readinessSelectors {
		candidate := doc.Find(s).First()
		if candidate.Length() == 0 {
			continue
		}
		if utf8.RuneCountInString(strings.TrimSpace(candidate.Text())) > minLen {
			return true
		}
	}
	return false
}
