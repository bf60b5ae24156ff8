//go:build windows

package cookies

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// importLock is a best-effort create-exclusive lock on Windows.
type importLock struct {
	f    *os.File
	path string
}

func acquireImportLock(cookiePath string, maxRetries int) (*importLock, error) {
	lockPath := cookiePath + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0600)
		if err == nil {
			return &importLock{f: f, path: lockPath}, nil
		}
		lastErr = err
		if i < maxRetries {
			time.Sleep(100 * time.Millisecond)
		}
	}
	return nil, fmt.Errorf("cookie file %s is locked by another run: %w", cookiePath, lastErr)
}

func (l *importLock) Release() error {
	if l.f == nil {
		return nil
	}
	_ = l.f.Close()
	l.f = nil
	return os.Remove(l.path)
}
