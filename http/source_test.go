package http_test

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gena "github.com/sunes26/Gena"
	genahttp "github.com/sunes26/Gena/http"
)

func TestSource_Snapshot(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		w.Write([]byte("<html><body><article>Main article text</article></body></html>"))
	}))
	defer srv.Close()

	source := genahttp.NewSource(srv.URL)
	defer source.Close()

	snapshot, err := source.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, srv.URL, snapshot.URL)
	assert.Contains(t, snapshot.HTML, "Main article text")
	assert.Empty(t, snapshot.Frames)
	assert.Empty(t, snapshot.Shadows)
}

func TestSource_SnapshotIsCached(t *testing.T) {
	t.Parallel()

	calls := 0
	srv := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		calls++
		w.Write([]byte("<html><body>content</body></html>"))
	}))
	defer srv.Close()

	source := genahttp.NewSource(srv.URL)
	defer source.Close()

	first, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	second, err := source.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestSource_FetchesSameOriginFrames(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		switch r.URL.Path {
		case "/frame":
			w.Write([]byte("<html><body>frame content</body></html>"))
		case "/broken":
			w.WriteHeader(stdhttp.StatusNotFound)
		default:
			w.Write([]byte(`<html><body>
				<iframe src="/frame"></iframe>
				<iframe src="/broken"></iframe>
				<iframe src="https://other.example.com/widget"></iframe>
			</body></html>`))
		}
	}))
	defer srv.Close()

	source := genahttp.NewSource(srv.URL)
	defer source.Close()

	snapshot, err := source.Snapshot(context.Background())
	require.NoError(t, err)

	// Only the same-origin frame that fetched successfully survives.
	require.Len(t, snapshot.Frames, 1)
	assert.Equal(t, srv.URL+"/frame", snapshot.Frames[0].URL)
	assert.Contains(t, snapshot.Frames[0].HTML, "frame content")
}

func TestSource_SurfacesDeclarativeShadowRoots(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		w.Write([]byte(`<html><body>
			<my-widget><template shadowrootmode="open"><p>shadow paragraph</p></template></my-widget>
			<other-el><template shadowrootmode="closed"><p>hidden</p></template></other-el>
		</body></html>`))
	}))
	defer srv.Close()

	source := genahttp.NewSource(srv.URL)
	defer source.Close()

	snapshot, err := source.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.Shadows, 1)
	assert.Equal(t, "my-widget", snapshot.Shadows[0].Host)
	assert.Contains(t, snapshot.Shadows[0].HTML, "shadow paragraph")
}

func TestSource_ServerErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusInternalServerError)
	}))
	defer srv.Close()

	source := genahttp.NewSource(srv.URL)
	defer source.Close()

	_, err := source.Snapshot(context.Background())
	require.Error(t, err)
	assert.Equal(t, gena.EUNAVAILABLE, gena.ErrorCode(err))
	assert.True(t, strings.Contains(gena.ErrorMessage(err), "HTTP 500"))
}
