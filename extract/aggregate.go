package extract

import (
	"strings"
	"unicode/utf8"

	gena "github.com/sunes26/Gena"
)

// Cross-boundary aggregation pulls text out of embedded frames and
// encapsulated sub-trees captured in the snapshot. Only length
// thresholds apply here — frame and sub-tree text is not noise-filtered,
// an intentional scope limit.

// framesText flattens the snapshot's readable frames, keeping those
// whose text exceeds the minimum content length, joined with blank lines
// in document order. Unreadable (cross-origin) frames never reach the
// snapshot; their absence is expected, not an error.
func (o *Orchestrator) framesText(snap *gena.Snapshot) string {
	var parts []string
	for _, f := range snap.Frames {
		text := o.Flattener.Flatten(f.HTML)
		if utf8.RuneCountInString(text) > o.Config.MinContentLength {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

// shadowsText flattens one level of encapsulated sub-trees, keeping
// those with more than 50 characters of text, in document order.
func (o *Orchestrator) shadowsText(snap *gena.Snapshot) string {
	var parts []string
	for _, s := range snap.Shadows {
		text := o.Flattener.Flatten(s.HTML)
		if utf8.RuneCountInString(text) > shadowTextThreshold {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}
