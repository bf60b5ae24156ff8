package ui

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Box drawing characters
const (
	BoxVertical   = "│"
	BoxHorizontal = "─"

	BoxDoubleHorizontal  = "═"
	BoxDoubleTopLeft     = "╔"
	BoxDoubleTopRight    = "╗"
	BoxDoubleBottomLeft  = "╚"
	BoxDoubleBottomRight = "╝"

	BulletCircle  = "•"
	BulletArrow   = "▸"
	BulletDiamond = "◆"
)

// AnsiRegex is compiled once for performance.
var AnsiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// GetTermWidth returns the terminal width, defaulting to 80.
func GetTermWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// StripAnsiCodes removes ANSI escape sequences from a string.
func StripAnsiCodes(s string) string {
	return AnsiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string (excluding ANSI codes).
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripAnsiCodes(s))
}

// TruncateWithEllipsis truncates a string to maxLen with ellipsis if needed.
func TruncateWithEllipsis(s string, maxLen int) string {
	if VisibleLength(s) <= maxLen {
		return s
	}
	runes := []rune(StripAnsiCodes(s))
	if maxLen <= 3 {
		if maxLen < 0 {
			maxLen = 0
		}
		return string(runes[:maxLen])
	}
	truncated := string(runes[:maxLen-3]) + "..."
	if codes := AnsiRegex.FindAllString(s, -1); len(codes) > 0 {
		return codes[0] + truncated + ColorReset
	}
	return truncated
}

// PadCenter centers a string in the specified width using visible length.
func PadCenter(s string, width int) string {
	visLen := VisibleLength(s)
	if visLen >= width {
		return s
	}
	padding := width - visLen
	leftPad := padding / 2
	return strings.Repeat(" ", leftPad) + s + strings.Repeat(" ", padding-leftPad)
}

// PrintHeader prints a styled header with box drawing.
func PrintHeader(title string) {
	width := GetTermWidth()
	if VisibleLength(title)+4 > width-4 {
		title = TruncateWithEllipsis(title, width-10)
	}
	lineLen := width - 2

	fmt.Printf("\n%s%s%s%s%s\n",
		ColorCyan, BoxDoubleTopLeft,
		strings.Repeat(BoxDoubleHorizontal, lineLen),
		BoxDoubleTopRight, ColorReset)
	fmt.Printf("%s%s%s %s %s%s%s\n",
		ColorCyan, BoxVertical, ColorReset,
		ColorBold+PadCenter(title, lineLen-2)+ColorReset,
		ColorCyan, BoxVertical, ColorReset)
	fmt.Printf("%s%s%s%s%s\n\n",
		ColorCyan, BoxDoubleBottomLeft,
		strings.Repeat(BoxDoubleHorizontal, lineLen),
		BoxDoubleBottomRight, ColorReset)
}

// PrintSection prints a section title with underline.
func PrintSection(title string) {
	fmt.Printf("\n%s%s %s%s\n", ColorBold, BulletDiamond, title, ColorReset)
	fmt.Printf("%s%s%s\n\n", ColorCyan, strings.Repeat(BoxHorizontal, len(title)+2), ColorReset)
}

// PrintKeyValue prints a key-value pair with styling.
func PrintKeyValue(key, value, valueColor string) {
	maxValueWidth := GetTermWidth() - len(key) - 10
	if VisibleLength(value) > maxValueWidth {
		value = TruncateWithEllipsis(value, maxValueWidth)
	}
	fmt.Printf("  %s%-20s%s %s%s%s\n",
		ColorCyan, key+":", ColorReset,
		valueColor, value, ColorReset)
}

// PrintDivider prints a horizontal divider.
func PrintDivider() {
	fmt.Printf("%s%s%s\n", ColorCyan, strings.Repeat(BoxHorizontal, GetTermWidth()-1), ColorReset)
}
