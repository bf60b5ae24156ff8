package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexflint/go-arg"
	"github.com/jmagar/ytui/internal/model"
	"github.com/jmagar/ytui/internal/testutil"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name      string
		argv      []string
		want      model.Args
		wantError bool
	}{
		{name: "none", argv: nil, want: model.Args{}},
		{name: "browser", argv: []string{"--cookies-from-browser", "Firefox"}, want: model.Args{CookiesFromBrowser: "firefox"}},
		{name: "file", argv: []string{"--cookies-file", "/tmp/c.txt"}, want: model.Args{CookiesFile: "/tmp/c.txt"}},
		{name: "no cookies", argv: []string{"--no-cookies"}, want: model.Args{NoCookies: true}},
		{name: "output dir", argv: []string{"-o", "/srv/media"}, want: model.Args{OutputDir: "/srv/media"}},
		{name: "unsupported browser", argv: []string{"--cookies-from-browser", "lynx"}, wantError: true},
		{name: "unknown flag", argv: []string{"--bogus"}, wantError: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, _, err := ParseArgs(tc.argv)
			if tc.wantError {
				if err == nil {
					t.Fatalf("expected error for %v", tc.argv)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tc.want {
				t.Fatalf("ParseArgs(%v) = %+v, want %+v", tc.argv, *got, tc.want)
			}
		})
	}
}

func TestParseArgs_HelpAndVersion(t *testing.T) {
	if _, _, err := ParseArgs([]string{"--help"}); !errors.Is(err, arg.ErrHelp) {
		t.Fatalf("expected arg.ErrHelp, got %v", err)
	}
	if _, _, err := ParseArgs([]string{"--version"}); !errors.Is(err, arg.ErrVersion) {
		t.Fatalf("expected arg.ErrVersion, got %v", err)
	}
}

func TestResolve_Defaults(t *testing.T) {
	home := testutil.WithTempHome(t)
	s, err := Resolve(&model.Args{}, nil, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s.CookiesFile != filepath.Join(home, ".youtube.txt") {
		t.Fatalf("CookiesFile = %q", s.CookiesFile)
	}
	if s.OutputDir != filepath.Join(home, "Downloads") {
		t.Fatalf("OutputDir = %q", s.OutputDir)
	}
	if s.AudioFormat != model.AudioMP3 {
		t.Fatalf("AudioFormat = %q", s.AudioFormat)
	}
	if s.LogPath != filepath.Join(home, ".ytui", "ytui.log") {
		t.Fatalf("LogPath = %q", s.LogPath)
	}
}

func TestResolve_FlagBeatsConfig(t *testing.T) {
	testutil.WithTempHome(t)
	cfg := &model.Config{OutputDir: "/cfg/out", AudioFormat: "WAV", CookiesFile: "/cfg/cookies.txt"}
	s, err := Resolve(&model.Args{OutputDir: "/flag/out"}, cfg, "/cfg/config.json")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s.OutputDir != "/flag/out" || s.CookiesFile != "/cfg/cookies.txt" || s.AudioFormat != model.AudioWAV {
		t.Fatalf("unexpected settings: %+v", s)
	}

	if _, err := Resolve(&model.Args{}, &model.Config{AudioFormat: "flac"}, "x"); err == nil {
		t.Fatal("expected invalid audioFormat to fail")
	}
}

func TestReadConfig(t *testing.T) {
	home := testutil.WithTempHome(t)

	cfg, path, err := ReadConfig()
	if err != nil || path != "" || *cfg != (model.Config{}) {
		t.Fatalf("missing config: got %+v %q %v", cfg, path, err)
	}

	dir := filepath.Join(home, ".config", "ytui")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "config.json")
	if err := os.WriteFile(want, []byte(`{"outputDir":"~/Music","audioFormat":"wav"}`), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, path, err = ReadConfig()
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if path != want || cfg.OutputDir != "~/Music" || cfg.AudioFormat != "wav" {
		t.Fatalf("got %+v from %q", cfg, path)
	}

	if err := os.WriteFile(want, []byte(`{not json`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadConfig(); err == nil {
		t.Fatal("expected malformed config to fail")
	}
}
