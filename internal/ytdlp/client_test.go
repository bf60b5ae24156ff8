package ytdlp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jmagar/ytui/internal/model"
	"github.com/jmagar/ytui/internal/proc"
	"github.com/jmagar/ytui/internal/testutil"
)

func TestFetchEntries_InvalidJSONCarriesStderr(t *testing.T) {
	c := NewClient("/bin/yt-dlp")
	c.output = func(_ context.Context, label, name string, args ...string) (proc.Result, error) {
		if label != "metadata" || name != "/bin/yt-dlp" {
			t.Fatalf("unexpected invocation %s %s", label, name)
		}
		return proc.Result{Stdout: "", Stderr: "ERROR: Sign in to confirm you're not a bot", ExitCode: 1}, nil
	}
	_, err := c.FetchEntries(context.Background(), "https://youtu.be/x", false, model.NoCookies())
	if !errors.Is(err, model.ErrMetadataParse) {
		t.Fatalf("expected ErrMetadataParse, got %v", err)
	}
	if !strings.Contains(err.Error(), "Sign in to confirm") {
		t.Fatalf("error lacks stderr text: %v", err)
	}
}

func TestImportCookies(t *testing.T) {
	tests := []struct {
		name     string
		result   proc.Result
		runErr   error
		wantErr  bool
		wantText string
	}{
		{name: "success", result: proc.Result{ExitCode: 0}},
		{name: "stderr", result: proc.Result{ExitCode: 1, Stderr: "could not find chrome cookies database"}, wantErr: true, wantText: "could not find chrome cookies database"},
		{name: "stdout fallback", result: proc.Result{ExitCode: 1, Stdout: "partial output"}, wantErr: true, wantText: "partial output"},
		{name: "silent failure", result: proc.Result{ExitCode: 2}, wantErr: true, wantText: "exit status 2"},
		{name: "start failure", result: proc.Result{ExitCode: -1}, runErr: errors.New("permission denied"), wantErr: true, wantText: "permission denied"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClient("yt-dlp")
			var gotArgs []string
			c.output = func(_ context.Context, _, _ string, args ...string) (proc.Result, error) {
				gotArgs = args
				return tc.result, tc.runErr
			}
			err := c.ImportCookies(context.Background(), "chrome", "/c.txt")
			if !reflect.DeepEqual(gotArgs, ImportArgs("chrome", "/c.txt")) {
				t.Fatalf("args = %q", gotArgs)
			}
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, model.ErrCookieImport) {
				t.Fatalf("expected ErrCookieImport, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantText) {
				t.Fatalf("error %q does not contain %q", err, tc.wantText)
			}
		})
	}
}

func TestDownload_CreatesDirectoryAndStreams(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "a", "b")
	c := NewClient("yt-dlp")
	var streamed []string
	c.stream = func(_ context.Context, label, _ string, args ...string) (int, error) {
		if info, err := os.Stat(outDir); err != nil || !info.IsDir() {
			t.Fatalf("output dir must exist before the downloader runs: %v", err)
		}
		streamed = args
		return 1, nil
	}
	req := DownloadRequest{Type: model.DownloadVideo, OutputDir: outDir, URL: "https://youtu.be/a"}
	code, err := c.Download(context.Background(), req, model.CookieFile("/c.txt"))
	if err != nil {
		t.Fatalf("non-zero downloader exit must not be an error: %v", err)
	}
	if code != 1 {
		t.Fatalf("code = %d, want 1", code)
	}
	if !reflect.DeepEqual(streamed, DownloadArgs(req, model.CookieFile("/c.txt"))) {
		t.Fatalf("streamed args = %q", streamed)
	}
}

func TestFetchEntries_RealProcess(t *testing.T) {
	script := testutil.WriteScript(t, filepath.Join(t.TempDir(), "yt-dlp"),
		`echo '{"entries":[{"title":"First","url":"https://youtu.be/1"},{"title":"Second","url":"https://youtu.be/2"}]}'`+"\n")
	meta, err := NewClient(script).FetchEntries(context.Background(), "query", true, model.NoCookies())
	if err != nil {
		t.Fatalf("FetchEntries: %v", err)
	}
	if len(meta.Entries) != 2 || meta.Entries[1].ResolveURL("") != "https://youtu.be/2" {
		t.Fatalf("unexpected entries: %+v", meta.Entries)
	}
}
