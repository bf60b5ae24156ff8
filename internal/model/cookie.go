package model

import "fmt"

// CookieSourceKind enumerates where authenticated requests get cookies from.
type CookieSourceKind int

const (
	CookiesAbsent CookieSourceKind = iota
	CookiesExistingFile
	CookiesBrowserImported
	CookiesDisabled
)

// String returns a short name for logs.
func (k CookieSourceKind) String() string {
	switch k {
	case CookiesExistingFile:
		return "existing_file"
	case CookiesBrowserImported:
		return "browser_imported"
	case CookiesDisabled:
		return "disabled"
	default:
		return "absent"
	}
}

// CookieSource is the resolved cookie configuration. It is produced once at
// startup and passed explicitly to every command builder.
type CookieSource struct {
	Kind    CookieSourceKind
	Path    string
	Browser string
}

// NoCookies is the explicitly disabled cookie source.
func NoCookies() CookieSource { return CookieSource{Kind: CookiesDisabled} }

// CookieFile is a cookie source backed by an existing file.
func CookieFile(path string) CookieSource {
	return CookieSource{Kind: CookiesExistingFile, Path: path}
}

// ImportedCookies is a cookie source freshly imported from browser into path.
func ImportedCookies(browser, path string) CookieSource {
	return CookieSource{Kind: CookiesBrowserImported, Path: path, Browser: browser}
}

// Enabled reports whether downloader invocations carry a cookie flag.
func (c CookieSource) Enabled() bool {
	return (c.Kind == CookiesExistingFile || c.Kind == CookiesBrowserImported) && c.Path != ""
}

// Describe returns a human-readable description.
func (c CookieSource) Describe() string {
	switch c.Kind {
	case CookiesExistingFile:
		return fmt.Sprintf("File (%s)", c.Path)
	case CookiesBrowserImported:
		return fmt.Sprintf("Imported from %s (%s)", c.Browser, c.Path)
	case CookiesDisabled:
		return "Disabled"
	default:
		return "Not configured"
	}
}
