// Package download fetches release archives over HTTP and extracts them.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Fetcher is a minimal HTTP download client. It carries no enforced timeout:
// a hanging transfer blocks the run, matching the rest of the pipeline's
// external tool calls. Context cancellation still applies.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a download client with the given user agent.
func NewFetcher(userAgent string) *Fetcher {
	if userAgent == "" {
		userAgent = "mango-titus/1.0"
	}
	return &Fetcher{
		client:    &http.Client{},
		userAgent: userAgent,
	}
}

// FetchArchive downloads the archive at url and extracts its contents into
// destDir. The downloaded file is staged in a temp file that is removed on
// every path.
func (f *Fetcher) FetchArchive(ctx context.Context, url, destDir string) error {
	tmp, err := f.fetchToTemp(ctx, url)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	if err := ExtractAll(ctx, tmp, destDir); err != nil {
		return fmt.Errorf("extracting %s: %w", url, err)
	}
	return nil
}

// fetchToTemp downloads url into a temp file and returns its path.
func (f *Fetcher) fetchToTemp(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading %s: unexpected status %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp("", "mango-titus-download-*.tar.gz")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing download: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
