package gena

import "regexp"

// wordRun matches a maximal run of word characters plus the Hiragana,
// Katakana, CJK ideograph, and Hangul blocks. An unspaced logographic run
// counts as a single word; this under-counts CJK text and is a known,
// preserved limitation.
var wordRun = regexp.MustCompile(`[\w\p{Hiragana}\p{Katakana}\p{Han}\p{Hangul}]+`)

// CountWords returns the number of word runs in text.
func CountWords(text string) int {
	return len(wordRun.FindAllStringIndex(text, -1))
}
