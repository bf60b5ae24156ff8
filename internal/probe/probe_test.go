package probe

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmagar/ytui/internal/model"
	"github.com/jmagar/ytui/internal/testutil"
)

func fakeLookPath(found map[string]string) LookPathFunc {
	return func(name string) (string, error) {
		if p, ok := found[name]; ok {
			return p, nil
		}
		return "", errors.New("not found")
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name      string
		found     map[string]string
		wantTools model.Tools
		wantErr   bool
	}{
		{
			name:      "primary preferred",
			found:     map[string]string{"yt-dlp": "/bin/yt-dlp", "youtube-dl": "/bin/youtube-dl", "ffplay": "/bin/ffplay"},
			wantTools: model.Tools{Downloader: "/bin/yt-dlp", Player: "/bin/ffplay"},
		},
		{
			name:      "legacy fallback without player",
			found:     map[string]string{"youtube-dl": "/bin/youtube-dl"},
			wantTools: model.Tools{Downloader: "/bin/youtube-dl"},
		},
		{
			name:      "missing downloader",
			found:     map[string]string{"ffplay": "/bin/ffplay"},
			wantTools: model.Tools{Player: "/bin/ffplay"},
			wantErr:   true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Locate(fakeLookPath(tc.found))
			if tc.wantErr {
				if !errors.Is(err, model.ErrMissingTool) {
					t.Fatalf("expected ErrMissingTool, got %v", err)
				}
				if !strings.Contains(err.Error(), "yt-dlp (or youtube-dl)") {
					t.Fatalf("unexpected message: %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.wantTools {
				t.Fatalf("Locate() = %+v, want %+v", got, tc.wantTools)
			}
		})
	}
}

func TestLocateTools_UsesPATH(t *testing.T) {
	dir := testutil.PathWith(t, "youtube-dl")
	got, err := LocateTools()
	if err != nil {
		t.Fatalf("LocateTools: %v", err)
	}
	if got.Downloader != filepath.Join(dir, "youtube-dl") {
		t.Fatalf("Downloader = %q", got.Downloader)
	}
	if got.HasPlayer() {
		t.Fatalf("expected no player, got %q", got.Player)
	}
}
