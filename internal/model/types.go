package model

// Config holds the user's optional on-disk configuration.
type Config struct {
	CookiesFile string `json:"cookiesFile,omitempty"`
	OutputDir   string `json:"outputDir,omitempty"`
	AudioFormat string `json:"audioFormat,omitempty"`
	LogPath     string `json:"logPath,omitempty"`
}

// ArgsDescriptionFunc is set by package main to provide colored help text.
// If nil, Description() returns an empty string (go-arg will use default help).
var ArgsDescriptionFunc func() string

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Args holds CLI arguments parsed by go-arg.
type Args struct {
	CookiesFromBrowser string `arg:"--cookies-from-browser" placeholder:"BROWSER" help:"Import cookies from browser non-interactively (chrome, firefox, chromium, edge, opera, safari)."`
	CookiesFile        string `arg:"--cookies-file" placeholder:"FILE" help:"Path to existing cookies file to use."`
	NoCookies          bool   `arg:"--no-cookies" help:"Continue without using cookies (may fail)."`
	OutputDir          string `arg:"-o,--output-dir" placeholder:"DIR" help:"Default answer for the output directory prompt."`
}

// Description provides custom help text for go-arg.
func (Args) Description() string {
	if ArgsDescriptionFunc != nil {
		return ArgsDescriptionFunc()
	}
	return ""
}

// Version provides the --version output for go-arg.
func (Args) Version() string {
	return "ytui " + Version
}

// Tools holds the resolved external executables.
// Player is empty when no player was found.
type Tools struct {
	Downloader string
	Player     string
}

// HasPlayer reports whether preview playback is possible.
func (t Tools) HasPlayer() bool {
	return t.Player != ""
}

// Settings is the fully resolved runtime configuration: flags layered over
// the config file layered over defaults.
type Settings struct {
	Args        Args
	CookiesFile string
	OutputDir   string
	AudioFormat AudioFormat
	LogPath     string
	ConfigPath  string
}
