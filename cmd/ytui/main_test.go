package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmagar/ytui/internal/model"
	"github.com/jmagar/ytui/internal/testutil"
)

func TestRunHelpAndVersion(t *testing.T) {
	testutil.WithTempHome(t)
	tests := []struct {
		name string
		argv []string
		want string
	}{
		{name: "help", argv: []string{"--help"}, want: "--cookies-from-browser"},
		{name: "version", argv: []string{"--version"}, want: "ytui " + model.Version},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(context.Background(), tc.argv, &stdout, &stderr); code != 0 {
				t.Fatalf("exit = %d, stderr = %s", code, stderr.String())
			}
			if !strings.Contains(stdout.String(), tc.want) {
				t.Fatalf("stdout missing %q:\n%s", tc.want, stdout.String())
			}
		})
	}
}

func TestRunRejectsUnknownBrowser(t *testing.T) {
	testutil.WithTempHome(t)
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--cookies-from-browser", "netscape"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Usage:") || !strings.Contains(stderr.String(), "invalid choice") {
		t.Fatalf("stderr should carry usage and the error:\n%s", stderr.String())
	}
}

func TestRunMissingDownloaderExitsOne(t *testing.T) {
	home := testutil.WithTempHome(t)
	testutil.PathWith(t, "ffplay")
	var code int
	testutil.CaptureStdout(t, func() {
		code = run(context.Background(), []string{"--no-cookies"}, &bytes.Buffer{}, &bytes.Buffer{})
	})
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	data, err := os.ReadFile(filepath.Join(home, ".ytui", "ytui.log"))
	if err != nil {
		t.Fatalf("run log not written: %v", err)
	}
	if !strings.Contains(string(data), `"event":"session"`) {
		t.Fatalf("run log lacks the abort entry:\n%s", data)
	}
}
