package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDownloadSavesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/daily.epub", r.URL.Path)
		_, _ = w.Write([]byte("epub bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	client := New(dir, 5*time.Second)

	saved, err := client.Download(context.Background(), srv.URL+"/daily.epub")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "daily.epub"), saved)

	contents, err := os.ReadFile(saved)
	require.NoError(t, err)
	require.Equal(t, "epub bytes", string(contents))
}

func TestDownloadFollowsRedirectForFilename(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/latest", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/issues/2026-08.pdf", http.StatusFound)
	})
	mux.HandleFunc("/issues/2026-08.pdf", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pdf bytes"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := t.TempDir()
	client := New(dir, 5*time.Second)

	saved, err := client.Download(context.Background(), srv.URL+"/latest")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "2026-08.pdf"), saved)
}

func TestDownloadNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := New(t.TempDir(), 5*time.Second)

	_, err := client.Download(context.Background(), srv.URL+"/missing.epub")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status 404")
}

func TestFilenameFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("index"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	client := New(dir, 5*time.Second)

	saved, err := client.Download(context.Background(), srv.URL+"/")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "download"), saved)
}
