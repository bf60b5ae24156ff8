package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/jmagar/ytui/internal/app"
	"github.com/jmagar/ytui/internal/config"
	"github.com/jmagar/ytui/internal/model"
	"github.com/jmagar/ytui/internal/probe"
	"github.com/jmagar/ytui/internal/prompt"
	"github.com/jmagar/ytui/internal/runlog"
	"github.com/jmagar/ytui/internal/runtime"
	"github.com/jmagar/ytui/internal/ui"
)

func main() {
	ctx, stop := runtime.SignalContext(context.Background())
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit status.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	settings, parser, err := config.Load(argv)
	if err != nil {
		return handleLoadError(parser, err, stdout, stderr)
	}

	if err := runlog.Init(settings.LogPath); err != nil {
		ui.PrintWarning(fmt.Sprintf("Run log disabled: %v", err))
	}
	defer func() { _ = runlog.Close() }()

	if !runtime.IsInteractive() {
		ui.PrintWarning("stdin is not a terminal; menus may not work")
	}

	tools, err := probe.LocateTools()
	if err != nil {
		ui.PrintError(err.Error())
		runlog.LogSession("abort", "", err)
		return 1
	}
	if !tools.HasPlayer() {
		ui.PrintWarning("ffplay not found in PATH; preview will be unavailable")
	}

	ui.PrintHeader("ytui " + model.Version)
	app.PrintStartupEnvironment(settings, tools)

	_, err = app.New(settings, tools, prompt.NewTerminal()).Run(ctx)
	reportRunError(err)
	return app.ExitCode(err)
}

func handleLoadError(parser *arg.Parser, err error, stdout, stderr io.Writer) int {
	switch {
	case errors.Is(err, arg.ErrHelp):
		parser.WriteHelp(stdout)
		return 0
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(stdout, model.Args{}.Version())
		return 0
	}
	if parser != nil {
		parser.WriteUsage(stderr)
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}

func reportRunError(err error) {
	switch {
	case err == nil, errors.Is(err, model.ErrUserExit):
		return
	case errors.Is(err, model.ErrAborted):
		fmt.Println()
		ui.PrintWarning("Aborted.")
		runlog.LogSession("abort", "", err)
	default:
		ui.PrintError(err.Error())
		runlog.LogSession("error", "", err)
	}
}
