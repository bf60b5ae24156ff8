// Package ytdlp drives the external downloader: metadata dumps, browser
// cookie import, and the final download.
package ytdlp

import (
	"context"
	"fmt"

	"github.com/jmagar/ytui/internal/helpers"
	"github.com/jmagar/ytui/internal/model"
	"github.com/jmagar/ytui/internal/proc"
)

// Client invokes a located downloader binary.
// Function fields are injected to keep the client unit-testable.
type Client struct {
	path     string
	output   proc.OutputFunc
	stream   proc.StreamFunc
	mkdirAll func(path string) error
}

// NewClient returns a client for the downloader at path.
func NewClient(path string) *Client {
	return &Client{
		path:     path,
		output:   proc.Output,
		stream:   proc.Stream,
		mkdirAll: helpers.MakeDirs,
	}
}

// Path returns the downloader executable.
func (c *Client) Path() string { return c.path }

// FetchEntries runs a metadata dump for query and returns normalized entries.
func (c *Client) FetchEntries(ctx context.Context, query string, search bool, cookies model.CookieSource) (model.Metadata, error) {
	res, err := c.output(ctx, "metadata", c.path, MetadataArgs(query, search, cookies)...)
	if err != nil {
		return model.Metadata{}, fmt.Errorf("error fetching info: %w", err)
	}
	meta, err := ParseMetadata(res.Stdout, res.Stderr)
	if err != nil {
		return model.Metadata{}, fmt.Errorf("error fetching info: %w", err)
	}
	return meta, nil
}

// ImportCookies asks the downloader to export browser's cookies into path.
// Success is the process exit status; on failure the error wraps
// model.ErrCookieImport with stderr, or stdout when stderr is empty.
func (c *Client) ImportCookies(ctx context.Context, browser, path string) error {
	res, err := c.output(ctx, "cookie_import", c.path, ImportArgs(browser, path)...)
	if err != nil {
		return fmt.Errorf("%w from %s: %w", model.ErrCookieImport, browser, err)
	}
	if res.ExitCode != 0 {
		if diag := helpers.FirstNonEmpty(res.Stderr, res.Stdout); diag != "" {
			return fmt.Errorf("%w from %s: %s", model.ErrCookieImport, browser, diag)
		}
		return fmt.Errorf("%w from %s: exit status %d", model.ErrCookieImport, browser, res.ExitCode)
	}
	return nil
}

// Download ensures the output directory exists and runs the download with
// output streamed to the terminal. The downloader's exit code is returned
// as-is; a non-zero code is not an error.
func (c *Client) Download(ctx context.Context, req DownloadRequest, cookies model.CookieSource) (int, error) {
	if err := c.mkdirAll(req.OutputDir); err != nil {
		return -1, fmt.Errorf("failed to create output directory %s: %w", req.OutputDir, err)
	}
	return c.stream(ctx, "download", c.path, DownloadArgs(req, cookies)...)
}
