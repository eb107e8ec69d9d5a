// Package fetch downloads documents into a hook's save directory.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

// Client wraps an HTTP client with the hook's save directory.
type Client struct {
	HTTP    *http.Client
	SaveDir string
}

// New returns a client saving into dir with the given request timeout.
func New(dir string, timeout time.Duration) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		SaveDir: dir,
	}
}

// Download fetches rawURL and writes the body into the save directory,
// returning the written file path. The filename comes from the final URL
// path segment after redirects, falling back to "download".
func (c *Client) Download(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", rawURL, err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %s", rawURL, resp.Status)
	}

	target := filepath.Join(c.SaveDir, filenameFor(resp.Request.URL))
	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", target, err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", target, err)
	}
	return target, nil
}

func filenameFor(u *url.URL) string {
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "download"
	}
	return name
}
