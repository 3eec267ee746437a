package gena

import "context"

// Config holds the process-wide extraction limits. A Config is immutable
// once handed to an extractor instance.
type Config struct {
	// MinContentLength is the threshold a candidate content region's
	// filtered text must exceed to be selected.
	MinContentLength int

	// MaxContentLength caps the final normalized content length.
	MaxContentLength int
}

// DefaultConfig returns the standard extraction limits.
func DefaultConfig() Config {
	return Config{
		MinContentLength: 100,
		MaxContentLength: 50000,
	}
}

// Metadata holds document-level descriptive fields. When multiple source
// tags map to the same field, the document-order-last one wins.
type Metadata struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Domain      string   `json:"domain"`
	Language    string   `json:"language"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Keywords    []string `json:"keywords"`

	// PDF fields, set only when the PDF branch produced the result.
	IsPDF         bool `json:"isPDF,omitempty"`
	PDFPages      int  `json:"pdfPages,omitempty"`
	PDFTotalPages int  `json:"pdfTotalPages,omitempty"`
}

// Stats describes the extracted content. CharCount is the rune count of
// Content; both counts are always derived from the content they ship with.
type Stats struct {
	CharCount int `json:"charCount"`
	WordCount int `json:"wordCount"`
}

// Result is the outcome of a single extraction call. It is produced once
// and never mutated afterward.
type Result struct {
	Content  string   `json:"content"`
	Metadata Metadata `json:"metadata"`
	Stats    Stats    `json:"stats"`
}

// Extractor is a complete extraction engine: it turns a document source
// into a Result.
type Extractor interface {
	Extract(ctx context.Context, src DocumentSource) (*Result, error)
}

// ContentLocator selects the best candidate content region of a page and
// returns its noise-filtered text.
type ContentLocator interface {
	// Locate returns the filtered text of the first candidate region
	// whose text exceeds the minimum content length, falling back to the
	// document body when none qualify.
	Locate(html string) (string, error)

	// Ready reports whether any readiness candidate region currently
	// holds more than minLen characters of text. Used by the bounded
	// readiness wait for late-rendering pages.
	Ready(html string, minLen int) bool
}

// MetadataReader extracts document-level metadata from a snapshot.
type MetadataReader interface {
	Read(snap *Snapshot) Metadata
}

// TextFlattener converts an HTML fragment to plain text. Used for frame
// and encapsulated sub-tree content, which is length-filtered but
// deliberately not noise-filtered.
type TextFlattener interface {
	Flatten(html string) string
}
