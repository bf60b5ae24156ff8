package ytdlp

import (
	"fmt"
	"path/filepath"

	"github.com/jmagar/ytui/internal/model"
)

// CookieArgs returns the cookie flags for src. Every metadata and download
// invocation starts with these so authenticated state is consistent.
func CookieArgs(src model.CookieSource) []string {
	if !src.Enabled() {
		return nil
	}
	return []string{"--cookies", src.Path}
}

// SearchURL wraps a query into a site-scoped search pseudo-URL.
func SearchURL(query string) string {
	return fmt.Sprintf("ytsearch%d:%s", model.SearchResultCount, query)
}

// MetadataArgs builds the JSON-dump arguments. Search mode requests a
// flattened single-document listing; direct mode a full info dump.
func MetadataArgs(query string, search bool, cookies model.CookieSource) []string {
	args := CookieArgs(cookies)
	if search {
		return append(args, "--dump-single-json", "--flat-playlist", SearchURL(query))
	}
	return append(args, "-J", query)
}

// ImportArgs builds the cookie-import invocation for browser into path.
func ImportArgs(browser, path string) []string {
	return []string{"--cookies-from-browser", browser, "--cookies", path, model.CookieReferenceURL}
}

// DownloadRequest is everything the Download Executor needs besides cookies.
type DownloadRequest struct {
	Type        model.DownloadType
	AudioFormat model.AudioFormat
	OutputDir   string
	URL         string
}

// OutputTemplate returns the templated output path inside dir.
func OutputTemplate(dir string) string {
	return filepath.Join(dir, model.OutputTemplate)
}

// DownloadArgs builds the download invocation.
func DownloadArgs(req DownloadRequest, cookies model.CookieSource) []string {
	args := CookieArgs(cookies)
	if req.Type.ExtractsAudio() {
		format := req.AudioFormat
		if format == "" {
			format = model.AudioMP3
		}
		args = append(args, "-x", "--audio-format", string(format))
	}
	return append(args, "-o", OutputTemplate(req.OutputDir), req.URL)
}
