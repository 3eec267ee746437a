package gena

import (
	"regexp"
	"strings"
)

var (
	multiNewline = regexp.MustCompile(`\n{3,}`)
	multiSpace   = regexp.MustCompile(`[ \t]{2,}`)
	zeroWidth    = regexp.MustCompile("[​-‍﻿]")
)

// Normalize cleans extracted text: collapses runs of three or more
// newlines to two, collapses runs of horizontal whitespace to a single
// space, strips zero-width characters, converts non-breaking spaces to
// regular spaces, trims every line and drops empty ones, then caps the
// result at maxLen runes with a trailing "..." marker.
//
// Normalize is idempotent except at the truncation boundary.
func Normalize(text string, maxLen int) string {
	text = multiNewline.ReplaceAllString(text, "\n\n")
	text = multiSpace.ReplaceAllString(text, " ")
	text = zeroWidth.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, " ", " ")

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	text = strings.Join(kept, "\n")

	if runes := []rune(text); maxLen > 0 && len(runes) > maxLen {
		text = string(runes[:maxLen]) + "..."
	}

	return strings.TrimSpace(text)
}

// JoinSections joins non-empty text sections with a blank line,
// preserving order. Empty or whitespace-only sections are skipped.
func JoinSections(sections ...string) string {
	kept := make([]string, 0, len(sections))
	for _, s := range sections {
		if strings.TrimSpace(s) != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, "\n\n")
}
