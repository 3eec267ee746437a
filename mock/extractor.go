package mock

import (
	"context"

	gena "github.com/sunes26/Gena"
)

var _ gena.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of gena.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, src gena.DocumentSource) (*gena.Result, error)
}

func (e *Extractor) Extract(ctx context.Context, src gena.DocumentSource) (*gena.Result, error) {
	return e.ExtractFn(ctx, src)
}

var _ gena.ContentLocator = (*ContentLocator)(nil)

// ContentLocator is a mock implementation of gena.ContentLocator.
type ContentLocator struct {
	LocateFn func(html string) (string, error)
	ReadyFn  func(html string, minLen int) bool
}

func (l *ContentLocator) Locate(html string) (string, error) {
	return l.LocateFn(html)
}

func (l *ContentLocator) Ready(html string, minLen int) bool {
	return l.ReadyFn(html, minLen)
}

var _ gena.MetadataReader = (*MetadataReader)(nil)

// MetadataReader is a mock implementation of gena.MetadataReader.
type MetadataReader struct {
	ReadFn func(snap *gena.Snapshot) gena.Metadata
}

func (r *MetadataReader) Read(snap *gena.Snapshot) gena.Metadata {
	return r.ReadFn(snap)
}

var _ gena.TextFlattener = (*TextFlattener)(nil)

// TextFlattener is a mock implementation of gena.TextFlattener.
type TextFlattener struct {
	FlattenFn func(html string) string
}

func (f *TextFlattener) Flatten(html string) string {
	return f.FlattenFn(html)
}
