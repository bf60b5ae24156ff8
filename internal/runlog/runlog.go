// Package runlog appends one JSON object per line describing every external
// invocation and session milestone, for grep/jq after the fact.
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry is a single structured record written to the run log.
type Entry struct {
	Timestamp  string   `json:"ts"`
	Event      string   `json:"event"` // "exec", "cookie_source", "session"
	Label      string   `json:"label,omitempty"`
	Tool       string   `json:"tool,omitempty"`
	Args       []string `json:"args,omitempty"`
	ExitCode   *int     `json:"exit_code,omitempty"`
	DurationMS int64    `json:"duration_ms,omitempty"`
	Detail     string   `json:"detail,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	f   *os.File
}

var (
	mu     sync.Mutex
	active *logger
)

// Init opens (or creates) the log file at logPath, replacing any previously
// opened log. The directory is created with mode 0700. On error logging stays
// disabled; callers are expected to warn and continue.
func Init(logPath string) error {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return fmt.Errorf("run log: mkdir %s: %w", filepath.Dir(logPath), err)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("run log: open %s: %w", logPath, err)
	}
	mu.Lock()
	prev := active
	active = &logger{f: f, enc: json.NewEncoder(f)}
	mu.Unlock()
	if prev != nil {
		_ = prev.f.Close()
	}
	return nil
}

// Close flushes and disables logging.
func Close() error {
	mu.Lock()
	l := active
	active = nil
	mu.Unlock()
	if l == nil {
		return nil
	}
	return l.f.Close()
}

// write never fails the caller; a broken log must not abort a download.
func write(e Entry) {
	mu.Lock()
	l := active
	mu.Unlock()
	if l == nil {
		return
	}
	e.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(e)
}

// LogExec records a finished external process. exitCode < 0 means the
// process never produced an exit status (failed to start or was killed).
func LogExec(label, tool string, args []string, exitCode int, duration time.Duration, runErr error) {
	e := Entry{
		Event:      "exec",
		Label:      label,
		Tool:       tool,
		Args:       args,
		DurationMS: duration.Milliseconds(),
	}
	if exitCode >= 0 {
		code := exitCode
		e.ExitCode = &code
	}
	if runErr != nil {
		e.Error = runErr.Error()
	}
	write(e)
}

// LogCookieSource records the resolved cookie configuration.
func LogCookieSource(kind, detail string) {
	write(Entry{Event: "cookie_source", Label: kind, Detail: detail})
}

// LogSession records a session milestone such as "start" or "finish".
func LogSession(label, detail string, err error) {
	e := Entry{Event: "session", Label: label, Detail: detail}
	if err != nil {
		e.Error = err.Error()
	}
	write(e)
}
