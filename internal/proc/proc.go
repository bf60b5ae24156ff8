// Package proc runs external tools synchronously, either capturing their
// output or handing them the terminal. Every run is written to the run log.
package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/jmagar/ytui/internal/runlog"
	"github.com/jmagar/ytui/internal/runtime"
)

// Result is the captured outcome of a finished process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// OutputFunc runs a process capturing stdout and stderr.
type OutputFunc func(ctx context.Context, label, name string, args ...string) (Result, error)

// StreamFunc runs a process attached to the terminal and returns its exit code.
type StreamFunc func(ctx context.Context, label, name string, args ...string) (int, error)

// waitDelay bounds how long Wait blocks on I/O after the context kills a child.
const waitDelay = 5 * time.Second

func command(ctx context.Context, name string, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = runtime.ChildProcAttr()
	cmd.WaitDelay = waitDelay
	return cmd
}

// Output runs name with args and captures both output streams as text. A
// non-zero exit status is not an error; it is reported in Result.ExitCode.
// Errors are returned only when the process could not be run to completion.
func Output(ctx context.Context, label, name string, args ...string) (Result, error) {
	cmd := command(ctx, name, args)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: exitCode(cmd)}
	err = classify(ctx, name, err)
	runlog.LogExec(label, name, args, res.ExitCode, time.Since(start), err)
	return res, err
}

// Stream runs name with args wired to the process stdio and waits for it.
func Stream(ctx context.Context, label, name string, args ...string) (int, error) {
	cmd := command(ctx, name, args)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	start := time.Now()
	err := cmd.Run()
	code := exitCode(cmd)
	err = classify(ctx, name, err)
	runlog.LogExec(label, name, args, code, time.Since(start), err)
	return code, err
}

// exitCode returns the process exit status, or -1 if there is none.
func exitCode(cmd *exec.Cmd) int {
	if cmd.ProcessState == nil {
		return -1
	}
	return cmd.ProcessState.ExitCode()
}

func classify(ctx context.Context, name string, err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s interrupted: %w", name, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return fmt.Errorf("run %s: %w", name, err)
}
