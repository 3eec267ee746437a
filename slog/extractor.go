// Package slog provides logging decorators for extraction components.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	gena "github.com/sunes26/Gena"
)

// Ensure LoggingExtractor implements gena.Extractor.
var _ gena.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured logging of each
// extraction run.
type LoggingExtractor struct {
	next   gena.Extractor
	engine string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The engine name
// identifies the wrapped implementation in log output.
func NewLoggingExtractor(next gena.Extractor, engine string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, engine: engine, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome with
// a per-run id.
func (e *LoggingExtractor) Extract(ctx context.Context, src gena.DocumentSource) (*gena.Result, error) {
	runID := uuid.NewString()
	begin := time.Now()

	result, err := e.next.Extract(ctx, src)
	if err != nil {
		e.logger.Error("extraction failed",
			"run_id", runID,
			"engine", e.engine,
			"duration", time.Since(begin),
			"code", gena.ErrorCode(err),
			"error", gena.ErrorMessage(err),
		)
		return nil, err
	}

	e.logger.Info("extraction complete",
		"run_id", runID,
		"engine", e.engine,
		"duration", time.Since(begin),
		"url", result.Metadata.URL,
		"chars", result.Stats.CharCount,
		"words", result.Stats.WordCount,
	)
	return result, nil
}
