package aoc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, h http.HandlerFunc) (*Fetcher, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	f := NewFetcher(Config{
		Session:  "abc123",
		CacheDir: t.TempDir(),
		BaseURL:  srv.URL + "/",
	})
	f.Client = srv.Client()
	f.Log = zerolog.Nop()
	return f, &hits
}

func TestFetcherFetchesOnceAndCaches(t *testing.T) {
	require := require.New(t)
	f, hits := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2022/day/4/input" {
			http.NotFound(w, r)
			return
		}
		c, err := r.Cookie("session")
		if err != nil || c.Value != "abc123" {
			http.Error(w, "no session", http.StatusBadRequest)
			return
		}
		if r.UserAgent() != defaultUserAgent {
			http.Error(w, "bad user agent", http.StatusBadRequest)
			return
		}
		w.Write([]byte("2-4,6-8\n"))
	})

	ctx := context.Background()
	got, err := f.Input(ctx, 2022, 4)
	require.NoError(err)
	require.Equal("2-4,6-8\n", got)

	got, err = f.Input(ctx, 2022, 4)
	require.NoError(err)
	require.Equal("2-4,6-8\n", got)
	require.EqualValues(1, hits.Load())

	cached, err := os.ReadFile(filepath.Join(f.CacheDir, "2022", "4"))
	require.NoError(err)
	require.Equal("2-4,6-8\n", string(cached))
}

func TestFetcherUsesExistingCache(t *testing.T) {
	require := require.New(t)
	f, hits := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("network"))
	})
	f.Session = ""
	path := f.CachePath(2018, 3)
	require.NoError(os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(os.WriteFile(path, []byte("#1 @ 1,3: 4x4"), 0o644))

	got, err := f.Input(context.Background(), 2018, 3)
	require.NoError(err)
	require.Equal("#1 @ 1,3: 4x4", got)
	require.Zero(hits.Load())
}

func TestFetcherErrors(t *testing.T) {
	require := require.New(t)
	f, _ := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Puzzle inputs differ by user.", http.StatusBadRequest)
	})
	_, err := f.Input(context.Background(), 2022, 1)
	require.ErrorContains(err, "400 Bad Request")
	_, statErr := os.Stat(f.CachePath(2022, 1))
	require.True(os.IsNotExist(statErr), "failed fetch must not be cached")

	f.Session = ""
	_, err = f.Input(context.Background(), 2022, 1)
	require.ErrorIs(err, ErrNoSession)

	f.Session = "abc123"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.Input(ctx, 2022, 2)
	require.ErrorIs(err, context.Canceled)
}
