// Package fetch retrieves raw log text from a remote location. It is the
// only component with network access; everything downstream works on the
// returned text blob.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultUserAgent = "webtally/1.0"

// HTTPClient is the part of *http.Client the fetcher needs. It exists so
// tests can substitute a fake transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher downloads log text over HTTP. A failed fetch is fatal for the
// run; there are no retries.
type Fetcher struct {
	client HTTPClient
	log    *zap.Logger
}

// New returns a Fetcher backed by a default HTTP client with the given
// timeout. A nil logger disables diagnostics.
func New(timeout time.Duration, log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// WithClient replaces the underlying HTTP client.
func (f *Fetcher) WithClient(client HTTPClient) *Fetcher {
	f.client = client
	return f
}

// Fetch downloads the log text at url and returns it as a string. Any
// transport problem, including a non-2xx response, is returned as an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("fetch: build request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch: unexpected status %s from %s", resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch: read body: %w", err)
	}

	f.log.Debug("fetched log text", zap.String("url", url), zap.Int("bytes", len(body)))
	return string(body), nil
}
