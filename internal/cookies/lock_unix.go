//go:build !windows

package cookies

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

// importLock serializes browser imports that target the same cookie file,
// so two concurrent runs cannot interleave writes into it.
type importLock struct {
	f *os.File
}

// acquireImportLock takes an exclusive flock on "<cookiePath>.lock",
// retrying every 100ms up to maxRetries times.
func acquireImportLock(cookiePath string, maxRetries int) (*importLock, error) {
	lockPath := cookiePath + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open lock file: %w", err)
		}
		if err = unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err == nil {
			return &importLock{f: f}, nil
		}
		_ = f.Close()
		lastErr = err
		if i < maxRetries {
			time.Sleep(100 * time.Millisecond)
		}
	}
	return nil, fmt.Errorf("cookie file %s is locked by another run: %w", cookiePath, lastErr)
}

// Release drops the lock. The lock file itself is left in place.
func (l *importLock) Release() error {
	if l.f == nil {
		return nil
	}
	err := unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
	closeErr := l.f.Close()
	l.f = nil
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return closeErr
}
