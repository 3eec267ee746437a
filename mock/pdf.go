package mock

import (
	"context"

	gena "github.com/sunes26/Gena"
)

var _ gena.PDFExtractor = (*PDFExtractor)(nil)

// PDFExtractor is a mock implementation of gena.PDFExtractor.
type PDFExtractor struct {
	IsPDFPageFn   func(ctx context.Context) bool
	ExtractTextFn func(ctx context.Context) (*gena.PDFText, error)
}

func (e *PDFExtractor) IsPDFPage(ctx context.Context) bool {
	return e.IsPDFPageFn(ctx)
}

func (e *PDFExtractor) ExtractText(ctx context.Context) (*gena.PDFText, error) {
	return e.ExtractTextFn(ctx)
}
