package ui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes - exported for use across packages.
var (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[91m"
	ColorGreen  = "\033[92m"
	ColorYellow = "\033[93m"
	ColorBlue   = "\033[94m"
	ColorPurple = "\033[95m"
	ColorCyan   = "\033[96m"
	ColorBold   = "\033[1m"
	ActiveTheme = "nordonedark"
)

// Unicode symbols
var (
	SymbolCheck    = "✓"
	SymbolCross    = "✗"
	SymbolArrow    = "→"
	SymbolMusic    = "♪"
	SymbolDownload = "⬇"
	SymbolInfo     = "ℹ"
	SymbolWarning  = "⚠"
)

// palette holds red, green, yellow, blue, purple, cyan in that order.
type palette [6]string

var themes = map[string]struct{ truecolor, color256, basic palette }{
	"nordonedark": {
		truecolor: palette{"\033[1;38;2;224;108;117m", "\033[1;38;2;152;195;121m", "\033[1;38;2;229;192;123m", "\033[1;38;2;143;188;255m", "\033[1;38;2;180;142;255m", "\033[1;38;2;136;220;255m"},
		color256:  palette{"\033[1;38;5;210m", "\033[1;38;5;114m", "\033[1;38;5;222m", "\033[1;38;5;111m", "\033[1;38;5;183m", "\033[1;38;5;159m"},
		basic:     palette{"\033[91m", "\033[92m", "\033[93m", "\033[94m", "\033[95m", "\033[96m"},
	},
	"vivid": {
		truecolor: palette{"\033[1;38;2;255;76;102m", "\033[1;38;2;80;250;123m", "\033[1;38;2;255;221;87m", "\033[1;38;2;110;196;255m", "\033[1;38;2;215;130;255m", "\033[1;38;2;0;245;255m"},
		color256:  palette{"\033[1;38;5;203m", "\033[1;38;5;84m", "\033[1;38;5;227m", "\033[1;38;5;81m", "\033[1;38;5;177m", "\033[1;38;5;51m"},
		basic:     palette{"\033[1;91m", "\033[1;92m", "\033[1;93m", "\033[1;94m", "\033[1;95m", "\033[1;96m"},
	},
}

func init() {
	InitColorPalette()
}

// InitColorPalette selects the color theme based on the YTUI_THEME env var.
// NO_COLOR, or stdout not being a terminal, disables colors entirely.
func InitColorPalette() {
	if theme := strings.ToLower(strings.TrimSpace(os.Getenv("YTUI_THEME"))); theme != "" {
		ActiveTheme = theme
	}
	ColorReset, ColorBold = "\033[0m", "\033[1m"
	if _, ok := os.LookupEnv("NO_COLOR"); ok || !term.IsTerminal(int(os.Stdout.Fd())) {
		DisableColors()
		return
	}

	t, ok := themes[ActiveTheme]
	if !ok {
		t = themes["nordonedark"]
	}
	switch {
	case SupportsTruecolor():
		applyPalette(t.truecolor)
	case Supports256Color():
		applyPalette(t.color256)
	default:
		applyPalette(t.basic)
	}
}

func applyPalette(p palette) {
	ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorPurple, ColorCyan = p[0], p[1], p[2], p[3], p[4], p[5]
}

// DisableColors blanks every color code.
func DisableColors() {
	applyPalette(palette{})
	ColorReset = ""
	ColorBold = ""
}

// SupportsTruecolor checks if the terminal supports 24-bit color.
func SupportsTruecolor() bool {
	termEnv := strings.ToLower(os.Getenv("TERM"))
	colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
	return strings.Contains(colorTerm, "truecolor") ||
		strings.Contains(colorTerm, "24bit") ||
		strings.Contains(termEnv, "truecolor") ||
		strings.Contains(termEnv, "24bit")
}

// Supports256Color checks if the terminal supports 256 colors.
func Supports256Color() bool {
	return strings.Contains(strings.ToLower(os.Getenv("TERM")), "256color")
}
