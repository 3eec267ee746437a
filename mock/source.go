// Package mock provides function-field test doubles for the gena
// interfaces.
package mock

import (
	"context"

	gena "github.com/sunes26/Gena"
)

var _ gena.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of gena.DocumentSource.
type DocumentSource struct {
	SnapshotFn func(ctx context.Context) (*gena.Snapshot, error)
}

func (s *DocumentSource) Snapshot(ctx context.Context) (*gena.Snapshot, error) {
	return s.SnapshotFn(ctx)
}
