package goquery

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// The noise filter runs four ordered, irreversible stages over a deep
// copy of the input: structural removal, attribute-based removal,
// link-text removal, then pattern stripping on the flattened text.
// Structural (selector) noise goes first because deleting whole sub-trees
// is cheap; the per-element attribute scan only walks what survives, and
// language-pattern stripping happens once on the final string instead of
// re-walking the tree.

// FilterToText runs the full noise-removal pipeline on a deep copy of
// sel and returns the remaining text, with image alt-text annotations
// appended one per line in document order. The original selection is
// never mutated.
func FilterToText(sel *goquery.Selection) string {
	clone := sel.Clone()

	RemoveBySelectors(clone, structuralSelectors)
	RemoveOrphanButtons(clone)
	RemoveHiddenAndAdElements(clone)
	RemoveSpamLinks(clone)

	text := strings.TrimSpace(StripTextPatterns(Text(clone)))

	if notes := ImageAnnotations(clone); len(notes) > 0 {
		text = strings.TrimSpace(text + "\n" + strings.Join(notes, "\n"))
	}
	return text
}

// RemoveBySelectors deletes every match of each selector, in order.
// Selectors that fail to compile are silently skipped.
func RemoveBySelectors(root *goquery.Selection, selectors []string) {
	for _, s := range selectors {
		matcher, err := cascadia.Compile(s)
		if err != nil {
			continue
		}
		root.FindMatcher(matcher).Remove()
	}
}

// RemoveOrphanButtons deletes button elements that sit outside an
// article context. Buttons inside an article are kept.
func RemoveOrphanButtons(root *goquery.Selection) {
	root.Find("button").Each(func(_ int, s *goquery.Selection) {
		if s.Closest("article").Length() == 0 {
			s.Remove()
		}
	})
}

// RemoveHiddenAndAdElements scans every remaining element and deletes
// those hidden from accessibility (aria-hidden), styled invisible via
// inline display:none or visibility:hidden (literal substring match, not
// computed style), or carrying an ad keyword in their class or id.
func RemoveHiddenAndAdElements(root *goquery.Selection) {
	root.Find("*").Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr("aria-hidden"); ok && v == "true" {
			s.Remove()
			return
		}
		if style, ok := s.Attr("style"); ok {
			st := strings.ReplaceAll(strings.ToLower(style), " ", "")
			if strings.Contains(st, "display:none") || strings.Contains(st, "visibility:hidden") {
				s.Remove()
				return
			}
		}
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		ident := strings.ToLower(class + " " + id)
		for _, kw := range adKeywords {
			if strings.Contains(ident, kw) {
				s.Remove()
				return
			}
		}
	})
}

// RemoveSpamLinks deletes anchors whose text contains a spam keyword,
// even when the anchor is embedded in an otherwise-kept paragraph.
func RemoveSpamLinks(root *goquery.Selection) {
	root.Find("a").Each(func(_ int, s *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(s.Text()))
		if text == "" {
			return
		}
		for _, kw := range spamLinkKeywords {
			if strings.Contains(text, kw) {
				s.Remove()
				return
			}
		}
	})
}

// ImageAnnotations returns bracketed alt-text lines for images whose alt
// text is strictly between 3 and 200 characters and carries no
// logo/icon/banner substring, in document order.
func ImageAnnotations(root *goquery.Selection) []string {
	var notes []string
	root.Find("img").Each(func(_ int, s *goquery.Selection) {
		alt, ok := s.Attr("alt")
		if !ok {
			return
		}
		alt = strings.TrimSpace(alt)
		n := utf8.RuneCountInString(alt)
		if n <= 3 || n >= 200 {
			return
		}
		lower := strings.ToLower(alt)
		for _, kw := range altExcludeKeywords {
			if strings.Contains(lower, kw) {
				return
			}
		}
		notes = append(notes, fmt.Sprintf("[이미지: %s]", alt))
	})
	return notes
}
