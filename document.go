package gena

import "context"

// Snapshot is a point-in-time read of a page: the rendered markup plus
// whatever embedded frames and encapsulated sub-trees were readable at
// capture time. Extraction operates only on snapshots, never on the live
// document, so the live tree is never mutated.
type Snapshot struct {
	// URL is the page location the snapshot was taken from.
	URL string

	// HTML is the page markup at capture time.
	HTML string

	// Frames holds readable embedded frame documents in document order.
	// Frames the source could not read (cross-origin) are absent.
	Frames []Frame

	// Shadows holds one level of encapsulated sub-trees in document
	// order. Nested encapsulation is not descended into.
	Shadows []ShadowTree
}

// Frame is an embedded frame's document.
type Frame struct {
	URL  string
	HTML string
}

// ShadowTree is a style/markup-isolated sub-tree reachable only through
// an explicit handle on its host element.
type ShadowTree struct {
	// Host is the tag name of the element the sub-tree is attached to.
	Host string

	// HTML is the sub-tree's markup.
	HTML string
}

// DocumentSource produces snapshots of a page. Sources over live pages
// may return different snapshots over time as the page renders; static
// sources return the same snapshot on every call.
type DocumentSource interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}
