package main

import (
	"fmt"
	"strings"

	"github.com/jmagar/ytui/internal/model"
	"github.com/jmagar/ytui/internal/ui"
)

func init() {
	// Wire the colored help text into model.Args.Description()
	model.ArgsDescriptionFunc = argsDescription
}

func argsDescription() string {
	var b strings.Builder

	heading := func(title string) {
		fmt.Fprintf(&b, "\n%s%s %s%s\n", ui.ColorBold, ui.BulletDiamond, title, ui.ColorReset)
		fmt.Fprintf(&b, "%s%s%s\n", ui.ColorCyan, strings.Repeat(ui.BoxHorizontal, 60), ui.ColorReset)
	}
	item := func(syntax, description string) {
		fmt.Fprintf(&b, "  %s%s%s %s%-34s%s %s\n", ui.ColorGreen, ui.BulletCircle, ui.ColorReset, ui.ColorCyan, syntax, ui.ColorReset, description)
	}
	example := func(syntax string) {
		fmt.Fprintf(&b, "  %s%s%s %s%s%s\n", ui.ColorYellow, ui.BulletArrow, ui.ColorReset, ui.ColorCyan, syntax, ui.ColorReset)
	}

	fmt.Fprintf(&b, "%s%s Interactive front end for yt-dlp%s\n", ui.ColorBold, ui.SymbolMusic, ui.ColorReset)

	heading("COOKIES")
	item("--cookies-file FILE", "Use an existing Netscape cookies file")
	item("--cookies-from-browser BROWSER", "Import cookies into "+model.DefaultCookiesFile)
	item("--no-cookies", "Skip cookies entirely")
	fmt.Fprintf(&b, "  With no flag, %s is used when present; otherwise a setup menu runs.\n", model.DefaultCookiesFile)

	heading("FILES")
	item("~/.ytui/config.json", "Optional defaults (cookiesFile, outputDir, audioFormat, logPath)")
	item(model.DefaultLogPath, "JSON-lines log of every external command")

	heading("EXAMPLES")
	example("ytui")
	example("ytui --cookies-from-browser firefox")
	example("ytui --no-cookies -o ~/Music")

	return b.String()
}
