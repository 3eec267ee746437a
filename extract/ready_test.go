package extract_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	gena "github.com/sunes26/Gena"
	"github.com/sunes26/Gena/extract"
	"github.com/sunes26/Gena/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadinessWait_ProceedsImmediatelyWhenReady(t *testing.T) {
	t.Parallel()

	o := newOrchestrator(&gena.Snapshot{HTML: "ready content"})
	o.ReadyTimeout = 5 * time.Second // must not be reached

	start := time.Now()
	_, err := o.Extract(context.Background())

	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestReadinessWait_TimesOutAndProceeds(t *testing.T) {
	t.Parallel()

	var polls atomic.Int32
	o := newOrchestrator(nil)
	o.Source = &mock.DocumentSource{
		SnapshotFn: func(ctx context.Context) (*gena.Snapshot, error) {
			polls.Add(1)
			return &gena.Snapshot{HTML: "late content"}, nil
		},
	}
	o.Locator = &mock.ContentLocator{
		LocateFn: func(html string) (string, error) { return html, nil },
		ReadyFn:  func(html string, minLen int) bool { return false }, // never ready
	}
	o.ReadyTimeout = 60 * time.Millisecond
	o.ReadyPollInterval = 10 * time.Millisecond

	result, err := o.Extract(context.Background())

	// Timeout is best effort, never an error: extraction proceeds anyway.
	require.NoError(t, err)
	assert.Equal(t, "late content", result.Content)
	assert.Greater(t, polls.Load(), int32(2), "should have polled repeatedly before the timeout")
}

func TestReadinessWait_BecomesReadyMidWait(t *testing.T) {
	t.Parallel()

	var polls atomic.Int32
	o := newOrchestrator(nil)
	o.Source = &mock.DocumentSource{
		SnapshotFn: func(ctx context.Context) (*gena.Snapshot, error) {
			polls.Add(1)
			return &gena.Snapshot{HTML: "rendered"}, nil
		},
	}
	o.Locator = &mock.ContentLocator{
		LocateFn: func(html string) (string, error) { return html, nil },
		ReadyFn:  func(html string, minLen int) bool { return polls.Load() >= 3 },
	}
	o.ReadyTimeout = 5 * time.Second
	o.ReadyPollInterval = 10 * time.Millisecond

	start := time.Now()
	_, err := o.Extract(context.Background())

	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestReadinessWait_AbsorbsSnapshotErrors(t *testing.T) {
	t.Parallel()

	var polls atomic.Int32
	o := newOrchestrator(nil)
	o.Source = &mock.DocumentSource{
		SnapshotFn: func(ctx context.Context) (*gena.Snapshot, error) {
			if polls.Add(1) < 3 {
				return nil, gena.Errorf(gena.EUNAVAILABLE, "still loading")
			}
			return &gena.Snapshot{HTML: "finally here"}, nil
		},
	}
	o.ReadyTimeout = 5 * time.Second
	o.ReadyPollInterval = 10 * time.Millisecond

	result, err := o.Extract(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "finally here", result.Content)
}
