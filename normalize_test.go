package gena_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	gena "github.com/sunes26/Gena"
	"github.com/stretchr/testify/assert"
)

const noLimit = 0

func TestNormalize_CollapsesNewlineRuns(t *testing.T) {
	t.Parallel()

	got := gena.Normalize("first\n\n\n\n\nsecond", noLimit)

	assert.Equal(t, "first\nsecond", got)
}

func TestNormalize_CollapsesHorizontalWhitespace(t *testing.T) {
	t.Parallel()

	got := gena.Normalize("a  b\t\tc   d", noLimit)

	assert.Equal(t, "a b c d", got)
}

func TestNormalize_StripsZeroWidthAndNBSP(t *testing.T) {
	t.Parallel()

	got := gena.Normalize("a​b‌c‍d﻿e f", noLimit)

	assert.Equal(t, "abcde f", got)
}

func TestNormalize_DropsEmptyLinesAndTrims(t *testing.T) {
	t.Parallel()

	got := gena.Normalize("  first line \n   \n second line  \n", noLimit)

	assert.Equal(t, "first line\nsecond line", got)
}

func TestNormalize_TruncatesWithEllipsis(t *testing.T) {
	t.Parallel()

	got := gena.Normalize(strings.Repeat("a", 50), 10)

	assert.Equal(t, strings.Repeat("a", 10)+"...", got)
}

func TestNormalize_TruncatesOnRuneBoundary(t *testing.T) {
	t.Parallel()

	got := gena.Normalize(strings.Repeat("한", 50), 10)

	assert.Equal(t, strings.Repeat("한", 10)+"...", got)
	assert.True(t, utf8.ValidString(got))
}

func TestNormalize_LengthBound(t *testing.T) {
	t.Parallel()

	inputs := []string{
		strings.Repeat("word ", 100),
		strings.Repeat("안녕하세요 ", 100),
		"short",
	}
	for _, in := range inputs {
		got := gena.Normalize(in, 20)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), 20+3)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"first\n\n\n\nsecond   third fourth",
		"  padded \n\n\t\n lines ​ here ",
		"already clean",
		"",
	}
	for _, in := range inputs {
		once := gena.Normalize(in, noLimit)
		twice := gena.Normalize(once, noLimit)
		assert.Equal(t, once, twice)
	}
}

func TestJoinSections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sections []string
		want     string
	}{
		{name: "all present", sections: []string{"a", "b", "c"}, want: "a\n\nb\n\nc"},
		{name: "skips empty", sections: []string{"a", "", "c"}, want: "a\n\nc"},
		{name: "skips whitespace only", sections: []string{"a", "  \n ", "c"}, want: "a\n\nc"},
		{name: "all empty", sections: []string{"", ""}, want: ""},
		{name: "none", sections: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gena.JoinSections(tt.sections...))
		})
	}
}
