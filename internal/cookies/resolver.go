// Package cookies decides, once per run, which cookie source the downloader
// uses: an explicit file, a fresh browser import, none, or whatever the
// first-run menu settles on.
package cookies

import (
	"context"
	"fmt"

	"github.com/jmagar/ytui/internal/helpers"
	"github.com/jmagar/ytui/internal/model"
	"github.com/jmagar/ytui/internal/prompt"
	"github.com/jmagar/ytui/internal/ui"
)

// Importer exports browser cookies into a cookie file.
type Importer interface {
	ImportCookies(ctx context.Context, browser, path string) error
}

// First-run menu choices, in display order.
const (
	choiceImport = iota
	choiceProvidePath
	choiceContinue
	choiceExit
)

// importLockRetries bounds the wait for a concurrent import (100ms each).
const importLockRetries = 50

var setupChoices = []string{
	"Import cookies from browser",
	"Provide path to existing cookies file",
	"Continue without cookies (may fail)",
	"Exit",
}

// Resolver runs the cookie decision. DefaultPath is where imports are written
// and where an existing cookie file is looked for.
type Resolver struct {
	Prompt      prompt.Prompter
	Importer    Importer
	DefaultPath string

	isFile func(path string) bool
}

// NewResolver returns a resolver using the filesystem for existence checks.
func NewResolver(p prompt.Prompter, imp Importer, defaultPath string) *Resolver {
	return &Resolver{Prompt: p, Importer: imp, DefaultPath: defaultPath, isFile: helpers.IsFile}
}

// Resolve applies, in order: --cookies-file, --cookies-from-browser,
// --no-cookies, an existing default cookie file, and finally the interactive
// first-run menu. Returned errors are fatal except model.ErrUserExit and
// model.ErrAborted.
func (r *Resolver) Resolve(ctx context.Context, args model.Args) (model.CookieSource, error) {
	switch {
	case args.CookiesFile != "":
		return r.existingFile(args.CookiesFile)
	case args.CookiesFromBrowser != "":
		return r.explicitImport(ctx, args.CookiesFromBrowser)
	case args.NoCookies:
		return model.NoCookies(), nil
	case r.isFile(r.DefaultPath):
		return model.CookieFile(r.DefaultPath), nil
	}
	return r.firstRun(ctx)
}

func (r *Resolver) existingFile(path string) (model.CookieSource, error) {
	expanded := helpers.ExpandHome(path)
	if !r.isFile(expanded) {
		return model.CookieSource{}, fmt.Errorf("%w at %s", model.ErrInvalidCookiePath, expanded)
	}
	return model.CookieFile(expanded), nil
}

func (r *Resolver) explicitImport(ctx context.Context, browser string) (model.CookieSource, error) {
	ui.PrintInfo(fmt.Sprintf("Ensure you are signed into %s in your browser and have visited YouTube.", browser))
	if err := r.Prompt.Pause("Press Enter to continue"); err != nil {
		return model.CookieSource{}, err
	}
	return r.importOnce(ctx, browser)
}

func (r *Resolver) importOnce(ctx context.Context, browser string) (model.CookieSource, error) {
	lock, err := acquireImportLock(r.DefaultPath, importLockRetries)
	if err != nil {
		return model.CookieSource{}, fmt.Errorf("%w from %s: %w", model.ErrCookieImport, browser, err)
	}
	defer func() {
		if releaseErr := lock.Release(); releaseErr != nil {
			ui.PrintWarning(fmt.Sprintf("failed to release cookie lock: %v", releaseErr))
		}
	}()

	ui.PrintInfo(fmt.Sprintf("Importing cookies from %s into %s...", browser, r.DefaultPath))
	if err := r.Importer.ImportCookies(ctx, browser, r.DefaultPath); err != nil {
		return model.CookieSource{}, err
	}
	ui.PrintSuccess(fmt.Sprintf("Successfully imported cookies from %s.", browser))
	return model.ImportedCookies(browser, r.DefaultPath), nil
}

func (r *Resolver) firstRun(ctx context.Context) (model.CookieSource, error) {
	ui.PrintInfo("First-time setup: ensure you are signed into your browser (with your YouTube account) " +
		"so cookies can be imported, or provide a path to an existing cookies file.")
	label := fmt.Sprintf("Cookies file not found at %s. How would you like to proceed?", r.DefaultPath)
	choice, err := r.Prompt.Select(label, setupChoices, 0)
	if err != nil {
		return model.CookieSource{}, err
	}

	switch choice {
	case choiceImport:
		return r.autoImport(ctx)
	case choiceProvidePath:
		path, err := r.Prompt.Input("Enter path to cookies file", r.DefaultPath)
		if err != nil {
			return model.CookieSource{}, err
		}
		return r.existingFile(path)
	case choiceContinue:
		return model.NoCookies(), nil
	default:
		return model.CookieSource{}, model.ErrUserExit
	}
}

// autoImport tries the fixed browser order, then lets the user pick any
// supported browser for one final attempt.
func (r *Resolver) autoImport(ctx context.Context) (model.CookieSource, error) {
	ui.PrintInfo("Attempting automatic cookie import from " + joinBrowsers(model.AutoImportBrowsers) + "...")
	for _, browser := range model.AutoImportBrowsers {
		ui.PrintInfo(fmt.Sprintf("Trying to import cookies from %s...", browser))
		err := r.Importer.ImportCookies(ctx, browser, r.DefaultPath)
		if err == nil {
			ui.PrintSuccess(fmt.Sprintf("Successfully imported cookies from %s.", browser))
			return model.ImportedCookies(browser, r.DefaultPath), nil
		}
		if ctx.Err() != nil {
			return model.CookieSource{}, err
		}
		ui.PrintWarning(fmt.Sprintf("Failed to import from %s: %v", browser, err))
	}

	idx, err := r.Prompt.Select("Automatic import failed. Select browser manually:", model.SupportedBrowsers, 0)
	if err != nil {
		return model.CookieSource{}, err
	}
	return r.importOnce(ctx, model.SupportedBrowsers[idx])
}

func joinBrowsers(browsers []string) string {
	switch len(browsers) {
	case 0:
		return ""
	case 1:
		return browsers[0]
	}
	out := browsers[0]
	for _, b := range browsers[1 : len(browsers)-1] {
		out += ", " + b
	}
	return out + " and " + browsers[len(browsers)-1]
}
