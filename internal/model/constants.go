package model

import "strings"

const (
	// DefaultCookiesFile is the home-relative cookie file location.
	DefaultCookiesFile = "~/.youtube.txt"
	// DefaultOutputDir is the home-relative download directory.
	DefaultOutputDir = "~/Downloads"
	// DefaultLogPath is the home-relative execution log.
	DefaultLogPath = "~/.ytui/ytui.log"
	// CookieReferenceURL is fetched while importing browser cookies.
	CookieReferenceURL = "https://www.youtube.com"
	// SearchResultCount is the number of results requested per search.
	SearchResultCount = 5
	// OutputTemplate is the downloader filename template.
	OutputTemplate = "%(title)s.%(ext)s"
	// SessionManifestName is the playlist manifest written after playlist downloads.
	SessionManifestName = "ytui-session.m3u8"
	// UntitledEntry is shown for entries without a title.
	UntitledEntry = "Untitled"
)

// Downloader and player executable names, in lookup preference order.
var (
	DownloaderCandidates = []string{"yt-dlp", "youtube-dl"}
	PlayerCandidates     = []string{"ffplay"}
)

// SupportedBrowsers lists the browsers the downloader can import cookies from.
var SupportedBrowsers = []string{"chrome", "firefox", "chromium", "edge", "opera", "safari"}

// AutoImportBrowsers is the fixed order tried by the interactive import.
var AutoImportBrowsers = []string{"chrome", "firefox"}

// IsSupportedBrowser reports whether name is one of SupportedBrowsers.
func IsSupportedBrowser(name string) bool {
	for _, b := range SupportedBrowsers {
		if b == name {
			return true
		}
	}
	return false
}

// Action is what the user wants to do first.
type Action int

const (
	ActionPaste Action = iota
	ActionSearch
)

// ActionLabels are the menu labels, indexed by Action.
var ActionLabels = []string{"Paste URL/ID", "Search YouTube"}

// DownloadType selects how the downloader is invoked.
type DownloadType int

const (
	DownloadVideo DownloadType = iota
	DownloadAudio
	DownloadPlaylist
)

// DownloadTypeLabels are the menu labels, indexed by DownloadType.
var DownloadTypeLabels = []string{"Video", "Audio", "Playlist"}

// String returns the menu label for the download type.
func (d DownloadType) String() string {
	if int(d) >= 0 && int(d) < len(DownloadTypeLabels) {
		return DownloadTypeLabels[d]
	}
	return "Unknown"
}

// ExtractsAudio reports whether the download uses audio extraction.
func (d DownloadType) ExtractsAudio() bool {
	return d == DownloadAudio || d == DownloadPlaylist
}

// AudioFormat is the post-extraction audio codec.
type AudioFormat string

const (
	AudioMP3 AudioFormat = "mp3"
	AudioWAV AudioFormat = "wav"
)

// AudioFormats lists the selectable formats, default first.
var AudioFormats = []AudioFormat{AudioMP3, AudioWAV}

// ParseAudioFormat converts a string to an AudioFormat, reporting validity.
func ParseAudioFormat(s string) (AudioFormat, bool) {
	switch AudioFormat(strings.ToLower(strings.TrimSpace(s))) {
	case AudioMP3:
		return AudioMP3, true
	case AudioWAV:
		return AudioWAV, true
	default:
		return "", false
	}
}
