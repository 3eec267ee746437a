package goquery

import "regexp"

// textPatterns strips meta-text from the flattened content: share
// prompts, comment/view/like counters, reporter bylines, and
// tip-submission prompts in Korean, English, Japanese, and Chinese.
// Matches are replaced with the empty string, not a token boundary, so
// adjacent text may concatenate. The lists are a preserved heuristic:
// they under-match unlisted languages and can over-match counter-like
// substrings in legitimate sentences.
var textPatterns = []*regexp.Regexp{
	// Share prompts.
	regexp.MustCompile(`(?i)share\s+(this\s+)?(article|story|post)`),
	regexp.MustCompile(`공유하기`),
	regexp.MustCompile(`シェアする`),
	regexp.MustCompile(`分享到?`),

	// Comment, view, and like counters.
	regexp.MustCompile(`댓글\s*\d+`),
	regexp.MustCompile(`조회수?\s*[\d,]+`),
	regexp.MustCompile(`좋아요\s*\d+`),
	regexp.MustCompile(`(?i)[\d,]+\s*(comments?|views?|likes?)`),
	regexp.MustCompile(`コメント\s*\d+`),
	regexp.MustCompile(`[\d,]+\s*(件のコメント|回視聴)`),
	regexp.MustCompile(`[\d,]+\s*(条评论|次浏览)`),

	// Reporter bylines.
	regexp.MustCompile(`[가-힣]{2,4}\s*(기자|특파원|인턴기자)`),
	regexp.MustCompile(`(?i)by\s+[\p{L}.\- ]{2,40}\s+(staff\s+)?(reporter|writer|correspondent)`),
	regexp.MustCompile(`[\p{Han}\p{Hiragana}\p{Katakana}]{2,6}\s*記者`),
	regexp.MustCompile(`[\p{Han}]{2,4}\s*记者`),

	// Tip-submission prompts.
	regexp.MustCompile(`제보하기`),
	regexp.MustCompile(`기사\s*제보`),
	regexp.MustCompile(`(?i)send\s+(us\s+)?(a\s+)?(news\s+)?tips?`),
	regexp.MustCompile(`情報提供はこちら`),
}

// StripTextPatterns removes every text-pattern match from text.
func StripTextPatterns(text string) string {
	for _, re := range textPatterns {
		text = re.ReplaceAllString(text, "")
	}
	return text
}
