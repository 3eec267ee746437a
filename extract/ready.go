package extract

import (
	"context"
	"time"
)

// awaitReadiness polls the document source until a readiness candidate
// holds enough text or the timeout elapses. It is a best-effort wait:
// it always returns, proceeding on timeout, and never reports an error.
// Snapshot failures during polling are absorbed and retried on the next
// tick.
func (o *Orchestrator) awaitReadiness(ctx context.Context) {
	timeout := o.ReadyTimeout
	if timeout <= 0 {
		timeout = DefaultReadyTimeout
	}
	interval := o.ReadyPollInterval
	if interval <= 0 {
		interval = DefaultReadyPollInterval
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if snap, err := o.Source.Snapshot(ctx); err == nil {
			if o.Locator.Ready(snap.HTML, o.Config.MinContentLength) {
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			return
		case <-ticker.C:
		}
	}
}
