// Package app runs one interactive session: cookies, lookup, selection,
// download, and optional preview.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmagar/ytui/internal/cookies"
	"github.com/jmagar/ytui/internal/helpers"
	"github.com/jmagar/ytui/internal/manifest"
	"github.com/jmagar/ytui/internal/model"
	"github.com/jmagar/ytui/internal/preview"
	"github.com/jmagar/ytui/internal/prompt"
	"github.com/jmagar/ytui/internal/runlog"
	"github.com/jmagar/ytui/internal/ui"
	"github.com/jmagar/ytui/internal/ytdlp"
)

// Downloader is the subset of ytdlp.Client the session needs.
type Downloader interface {
	cookies.Importer
	FetchEntries(ctx context.Context, query string, search bool, src model.CookieSource) (model.Metadata, error)
	Download(ctx context.Context, req ytdlp.DownloadRequest, src model.CookieSource) (int, error)
}

// Previewer plays the newest file of a directory.
type Previewer interface {
	Preview(ctx context.Context, dir string) (preview.Outcome, error)
}

// Session accumulates the user's answers for one run.
type Session struct {
	Cookies      model.CookieSource
	Action       model.Action
	Query        string
	Target       string
	Entry        model.Entry
	DownloadType model.DownloadType
	AudioFormat  model.AudioFormat
	OutputDir    string
	ExitStatus   int
	Manifest     string
}

// App wires the session collaborators.
type App struct {
	Settings   *model.Settings
	Tools      model.Tools
	Prompt     prompt.Prompter
	Downloader Downloader
	Previewer  Previewer
}

// New builds an App backed by the real downloader and player.
func New(settings *model.Settings, tools model.Tools, p prompt.Prompter) *App {
	return &App{
		Settings:   settings,
		Tools:      tools,
		Prompt:     p,
		Downloader: ytdlp.NewClient(tools.Downloader),
		Previewer:  preview.NewLauncher(tools.Player, model.SessionManifestName),
	}
}

// ExitCode maps a Run error to the process exit status.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, model.ErrUserExit) || errors.Is(err, model.ErrAborted) {
		return 0
	}
	return 1
}

// Run executes the whole session. The returned Session holds whatever was
// decided before an error stopped the flow.
func (a *App) Run(ctx context.Context) (*Session, error) {
	s := &Session{}
	runlog.LogSession("start", a.Tools.Downloader, nil)

	resolver := cookies.NewResolver(a.Prompt, a.Downloader, a.Settings.CookiesFile)
	src, err := resolver.Resolve(ctx, a.Settings.Args)
	if err != nil {
		return s, err
	}
	s.Cookies = src
	runlog.LogCookieSource(src.Kind.String(), src.Describe())
	ui.PrintKeyValue("Cookies", src.Describe(), ui.ColorYellow)

	meta, err := a.lookup(ctx, s)
	if err != nil {
		return s, err
	}
	if err := a.choose(s, meta); err != nil {
		return s, err
	}
	if err := a.download(ctx, s); err != nil {
		return s, err
	}
	if err := a.preview(ctx, s); err != nil {
		return s, err
	}

	ui.PrintDivider()
	ui.PrintSuccess("All done!")
	runlog.LogSession("finish", s.Target, nil)
	return s, nil
}

func (a *App) lookup(ctx context.Context, s *Session) (model.Metadata, error) {
	idx, err := a.Prompt.Select("Choose action:", model.ActionLabels, 0)
	if err != nil {
		return model.Metadata{}, err
	}
	s.Action = model.Action(idx)

	search := s.Action == model.ActionSearch
	if search {
		s.Query, err = a.Prompt.Input("Enter search term", "")
	} else {
		s.Query, err = a.Prompt.Input("Enter video or playlist URL", "")
	}
	if err != nil {
		return model.Metadata{}, err
	}

	ui.PrintInfo("Fetching info...")
	meta, err := a.Downloader.FetchEntries(ctx, s.Query, search, s.Cookies)
	if err != nil {
		return model.Metadata{}, err
	}
	s.Target = s.Query
	if search {
		s.Target = ytdlp.SearchURL(s.Query)
	}
	return meta, nil
}

func (a *App) choose(s *Session, meta model.Metadata) error {
	idx, err := a.Prompt.Select("Download type:", model.DownloadTypeLabels, 0)
	if err != nil {
		return err
	}
	s.DownloadType = model.DownloadType(idx)

	// Playlist mode keeps the search pseudo-URL or pasted URL as the target.
	s.Entry = meta.Entries[0]
	if s.DownloadType != model.DownloadPlaylist {
		if len(meta.Entries) > 1 {
			if s.Entry, err = SelectEntry(a.Prompt, meta.Entries); err != nil {
				return err
			}
		}
		s.Target = s.Entry.ResolveURL(s.Target)
	}

	s.AudioFormat = a.Settings.AudioFormat
	if s.DownloadType.ExtractsAudio() {
		labels := make([]string, len(model.AudioFormats))
		def := 0
		for i, f := range model.AudioFormats {
			labels[i] = string(f)
			if f == a.Settings.AudioFormat {
				def = i
			}
		}
		idx, err := a.Prompt.Select("Audio format:", labels, def)
		if err != nil {
			return err
		}
		s.AudioFormat = model.AudioFormats[idx]
	}

	dir, err := a.Prompt.Input("Output directory", a.Settings.OutputDir)
	if err != nil {
		return err
	}
	s.OutputDir = helpers.ExpandHome(dir)
	return nil
}

func (a *App) download(ctx context.Context, s *Session) error {
	var before manifest.Snapshot
	if s.DownloadType == model.DownloadPlaylist {
		snap, err := manifest.Take(s.OutputDir)
		if err != nil {
			ui.PrintWarning(fmt.Sprintf("Session manifest disabled: %v", err))
		}
		before = snap
	}

	fmt.Println()
	ui.PrintDownload("Starting download...")
	fmt.Println()
	code, err := a.Downloader.Download(ctx, ytdlp.DownloadRequest{
		Type:        s.DownloadType,
		AudioFormat: s.AudioFormat,
		OutputDir:   s.OutputDir,
		URL:         s.Target,
	}, s.Cookies)
	if err != nil {
		return err
	}
	s.ExitStatus = code

	if before != nil {
		path, n, err := manifest.WriteSession(s.OutputDir, before)
		switch {
		case err != nil:
			ui.PrintWarning(fmt.Sprintf("Could not write session manifest: %v", err))
		case n > 0:
			s.Manifest = path
			ui.PrintSuccess(fmt.Sprintf("Wrote playlist manifest %s (%d files)", path, n))
		}
	}
	return nil
}

func (a *App) preview(ctx context.Context, s *Session) error {
	ok, err := a.Prompt.Confirm("Preview downloaded file")
	if err != nil || !ok {
		return err
	}
	if _, err := a.Previewer.Preview(ctx, s.OutputDir); err != nil {
		if ctx.Err() != nil {
			return err
		}
		ui.PrintWarning(err.Error())
	}
	return nil
}
