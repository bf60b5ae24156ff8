// Package probe locates the external downloader and player executables.
package probe

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/jmagar/ytui/internal/model"
)

// LookPathFunc resolves an executable name to a path, like exec.LookPath.
type LookPathFunc func(file string) (string, error)

// FindFirst returns the path of the first candidate found, or "".
func FindFirst(lookPath LookPathFunc, candidates []string) string {
	for _, name := range candidates {
		if resolved, err := lookPath(name); err == nil && resolved != "" {
			return resolved
		}
	}
	return ""
}

// LocateTools finds the downloader (required) and player (optional) on PATH.
func LocateTools() (model.Tools, error) {
	return Locate(exec.LookPath)
}

// Locate is LocateTools with an injectable lookup.
func Locate(lookPath LookPathFunc) (model.Tools, error) {
	tools := model.Tools{
		Downloader: FindFirst(lookPath, model.DownloaderCandidates),
		Player:     FindFirst(lookPath, model.PlayerCandidates),
	}
	if tools.Downloader == "" {
		return tools, fmt.Errorf("%w: %s (or %s) not found in PATH",
			model.ErrMissingTool, model.DownloaderCandidates[0], strings.Join(model.DownloaderCandidates[1:], ", "))
	}
	return tools, nil
}
