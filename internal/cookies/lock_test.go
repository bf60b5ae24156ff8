//go:build !windows

package cookies

import (
	"path/filepath"
	"testing"
)

func TestImportLockExcludesSecondHolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".youtube.txt")
	first, err := acquireImportLock(path, 0)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if _, err := acquireImportLock(path, 1); err == nil {
		t.Fatal("second acquire should fail while the first lock is held")
	}
	if err := first.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	second, err := acquireImportLock(path, 0)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	_ = second.Release()
	if err := second.Release(); err != nil {
		t.Fatalf("double release should be a no-op: %v", err)
	}
}
