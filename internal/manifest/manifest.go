// Package manifest records which files a playlist download produced, as an
// HLS-style media playlist that players can open directly.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/grafov/m3u8"
	"github.com/jmagar/ytui/internal/helpers"
	"github.com/jmagar/ytui/internal/model"
)

// Snapshot maps file names to modification times for the regular files in a
// directory.
type Snapshot map[string]time.Time

// Take snapshots dir. A missing directory yields an empty snapshot.
func Take(dir string) (Snapshot, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	snap := make(Snapshot, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || entry.Name() == model.SessionManifestName {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		snap[entry.Name()] = info.ModTime()
	}
	return snap, nil
}

// Changed returns the names that are new or modified in after relative to
// before, oldest first.
func Changed(before, after Snapshot) []string {
	var names []string
	for name, mtime := range after {
		if prev, ok := before[name]; !ok || !prev.Equal(mtime) {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		ti, tj := after[names[i]], after[names[j]]
		if ti.Equal(tj) {
			return names[i] < names[j]
		}
		return ti.Before(tj)
	})
	return names
}

// Encode renders names as a VOD media playlist. Durations are unknown and
// written as zero.
func Encode(names []string) ([]byte, error) {
	if len(names) == 0 {
		return nil, errors.New("manifest: no files")
	}
	p, err := m3u8.NewMediaPlaylist(0, uint(len(names)))
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	p.MediaType = m3u8.VOD
	for _, name := range names {
		if err := p.Append(name, 0, name); err != nil {
			return nil, fmt.Errorf("manifest: append %s: %w", name, err)
		}
	}
	p.Close()
	return p.Encode().Bytes(), nil
}

// WriteSession writes the files changed since before into the session
// manifest in dir. It returns the manifest path and the number of files
// listed; nothing is written when no files changed.
func WriteSession(dir string, before Snapshot) (string, int, error) {
	after, err := Take(dir)
	if err != nil {
		return "", 0, err
	}
	names := Changed(before, after)
	if len(names) == 0 {
		return "", 0, nil
	}
	data, err := Encode(names)
	if err != nil {
		return "", 0, err
	}
	path := filepath.Join(dir, model.SessionManifestName)
	if err := helpers.WriteFileAtomic(path, data, 0644); err != nil {
		return "", 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, len(names), nil
}
