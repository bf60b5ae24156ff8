// Package preview plays the newest file in the output directory.
package preview

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jmagar/ytui/internal/proc"
	"github.com/jmagar/ytui/internal/ui"
)

// File is a regular file found in the output directory.
type File struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Outcome says what Preview ended up doing.
type Outcome int

const (
	Played Outcome = iota
	NoFiles
	NoPlayer
)

// LatestFile returns the most recently modified regular file directly inside
// dir, ignoring names in exclude. Among equally recent files the
// lexically first name wins.
func LatestFile(dir string, exclude ...string) (File, bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return File{}, false, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	var latest File
	found := false
	for _, entry := range entries {
		if skip[entry.Name()] || !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !found || info.ModTime().After(latest.ModTime) {
			latest = File{Path: filepath.Join(dir, entry.Name()), Size: info.Size(), ModTime: info.ModTime()}
			found = true
		}
	}
	return latest, found, nil
}

// Launcher starts the player on a local file.
type Launcher struct {
	Player  string
	Exclude []string

	stream proc.StreamFunc
}

// NewLauncher returns a launcher for player; an empty player disables playback.
func NewLauncher(player string, exclude ...string) *Launcher {
	return &Launcher{Player: player, Exclude: exclude, stream: proc.Stream}
}

// PlayerArgs returns the no-display, auto-exit invocation for path.
func PlayerArgs(path string) []string {
	return []string{"-nodisp", "-autoexit", path}
}

// Preview plays the newest file in dir. Missing files or a missing player
// are reported and returned as an Outcome, never as an error.
func (l *Launcher) Preview(ctx context.Context, dir string) (Outcome, error) {
	latest, ok, err := LatestFile(dir, l.Exclude...)
	if err != nil {
		return NoFiles, err
	}
	if !ok {
		ui.PrintWarning("No files found to preview.")
		return NoFiles, nil
	}
	if l.Player == "" {
		ui.PrintWarning(fmt.Sprintf("ffplay not found; cannot preview %s", latest.Path))
		return NoPlayer, nil
	}

	ui.PrintMusic(fmt.Sprintf("Previewing %s%s%s (%s, modified %s)",
		ui.ColorBold, filepath.Base(latest.Path), ui.ColorReset,
		humanize.Bytes(uint64(latest.Size)), humanize.Time(latest.ModTime)))
	if _, err := l.stream(ctx, "preview", l.Player, PlayerArgs(latest.Path)...); err != nil {
		return Played, fmt.Errorf("preview failed: %w", err)
	}
	return Played, nil
}
