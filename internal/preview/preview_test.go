package preview

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jmagar/ytui/internal/testutil"
)

func writeFileAt(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(name), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLatestFile_PicksNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeFileAt(t, dir, "a.mp3", base)
	newest := writeFileAt(t, dir, "b.mp3", base.Add(20*time.Minute))
	writeFileAt(t, dir, "c.mp3", base.Add(10*time.Minute))
	if err := os.Mkdir(filepath.Join(dir, "newer-dir"), 0755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := LatestFile(dir)
	if err != nil || !ok {
		t.Fatalf("LatestFile: ok=%v err=%v", ok, err)
	}
	if got.Path != newest {
		t.Fatalf("LatestFile = %s, want %s", got.Path, newest)
	}
}

func TestLatestFile_Exclude(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	want := writeFileAt(t, dir, "song.mp3", base)
	writeFileAt(t, dir, "ytui-session.m3u8", base.Add(time.Minute))

	got, ok, err := LatestFile(dir, "ytui-session.m3u8")
	if err != nil || !ok || got.Path != want {
		t.Fatalf("LatestFile = %+v ok=%v err=%v, want %s", got, ok, err, want)
	}
}

func TestPreview_EmptyDirectory(t *testing.T) {
	l := NewLauncher("/bin/ffplay")
	l.stream = func(context.Context, string, string, ...string) (int, error) {
		t.Fatal("player must not run for an empty directory")
		return 0, nil
	}
	var outcome Outcome
	var err error
	out := testutil.CaptureStdout(t, func() {
		outcome, err = l.Preview(context.Background(), t.TempDir())
	})
	if err != nil || outcome != NoFiles {
		t.Fatalf("Preview = %v, %v; want NoFiles", outcome, err)
	}
	if !strings.Contains(out, "No files found to preview.") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPreview_NoPlayer(t *testing.T) {
	dir := t.TempDir()
	writeFileAt(t, dir, "a.mp3", time.Now())
	out := testutil.CaptureStdout(t, func() {
		outcome, err := NewLauncher("").Preview(context.Background(), dir)
		if err != nil || outcome != NoPlayer {
			t.Errorf("Preview = %v, %v; want NoPlayer", outcome, err)
		}
	})
	if !strings.Contains(out, "ffplay not found") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPreview_InvokesPlayer(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeFileAt(t, dir, "old.mp3", base)
	newest := writeFileAt(t, dir, "new.mp3", base.Add(time.Minute))

	l := NewLauncher("/usr/bin/ffplay")
	var gotName string
	var gotArgs []string
	l.stream = func(_ context.Context, _ string, name string, args ...string) (int, error) {
		gotName, gotArgs = name, args
		return 0, nil
	}
	outcome, err := l.Preview(context.Background(), dir)
	if err != nil || outcome != Played {
		t.Fatalf("Preview = %v, %v", outcome, err)
	}
	if gotName != "/usr/bin/ffplay" || !reflect.DeepEqual(gotArgs, []string{"-nodisp", "-autoexit", newest}) {
		t.Fatalf("player invoked as %s %q", gotName, gotArgs)
	}
}
