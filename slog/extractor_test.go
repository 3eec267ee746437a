package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gena "github.com/sunes26/Gena"
	"github.com/sunes26/Gena/mock"
	genaslog "github.com/sunes26/Gena/slog"
)

func TestLoggingExtractor_Success(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	inner := &mock.Extractor{
		ExtractFn: func(ctx context.Context, src gena.DocumentSource) (*gena.Result, error) {
			return &gena.Result{
				Content:  "hello world",
				Metadata: gena.Metadata{URL: "https://example.com/post"},
				Stats:    gena.Stats{CharCount: 11, WordCount: 2},
			}, nil
		},
	}

	extractor := genaslog.NewLoggingExtractor(inner, "pipeline", logger)
	result, err := extractor.Extract(context.Background(), &mock.DocumentSource{})
	require.NoError(t, err)
	require.NotNil(t, result)

	out := buf.String()
	assert.Contains(t, out, "extraction complete")
	assert.Contains(t, out, "engine=pipeline")
	assert.Contains(t, out, "url=https://example.com/post")
	assert.Contains(t, out, "chars=11")
	assert.Contains(t, out, "words=2")
	assert.Contains(t, out, "run_id=")
}

func TestLoggingExtractor_Failure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	inner := &mock.Extractor{
		ExtractFn: func(ctx context.Context, src gena.DocumentSource) (*gena.Result, error) {
			return nil, gena.Errorf(gena.EUNAVAILABLE, "page not reachable")
		},
	}

	extractor := genaslog.NewLoggingExtractor(inner, "readability", logger)
	_, err := extractor.Extract(context.Background(), &mock.DocumentSource{})
	require.Error(t, err)
	assert.Equal(t, gena.EUNAVAILABLE, gena.ErrorCode(err))

	out := buf.String()
	assert.Contains(t, out, "extraction failed")
	assert.Contains(t, out, "engine=readability")
	assert.Contains(t, out, "code=unavailable")
	assert.Contains(t, out, "page not reachable")
}
