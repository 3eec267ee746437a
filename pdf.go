package gena

import "context"

// PDFText is the outcome of a successful PDF text extraction. The char
// and word counts are the collaborator's own and are reported verbatim,
// never recomputed.
type PDFText struct {
	Text           string
	ExtractedPages int
	TotalPages     int
	CharCount      int
	WordCount      int
}

// PDFExtractor is the PDF collaborator capability. The orchestrator
// branches to it when it is present and reports the current page as a
// PDF document.
type PDFExtractor interface {
	// IsPDFPage reports whether the page under extraction is a PDF
	// document. It is a capability check and must not fail.
	IsPDFPage(ctx context.Context) bool

	// ExtractText extracts the PDF's text. A failed extraction returns
	// an error carrying the collaborator's message; partial text is
	// never returned.
	ExtractText(ctx context.Context) (*PDFText, error)
}
