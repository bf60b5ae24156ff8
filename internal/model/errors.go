package model

import "errors"

// Sentinel errors for the fatal and control-flow conditions of a session.
var (
	// ErrMissingTool is returned when no downloader executable is on PATH.
	ErrMissingTool = errors.New("required external tool not found")
	// ErrInvalidCookiePath is returned when a supplied cookie file does not exist.
	ErrInvalidCookiePath = errors.New("cookies file not found")
	// ErrCookieImport is returned when the downloader fails to import browser cookies.
	ErrCookieImport = errors.New("error importing cookies")
	// ErrMetadataParse is returned when the downloader does not emit valid JSON.
	ErrMetadataParse = errors.New("yt-dlp failed to return valid JSON")
	// ErrUserExit is returned when the user picks Exit from a menu.
	ErrUserExit = errors.New("exit requested")
	// ErrAborted is returned when a prompt is cancelled (Ctrl-C or EOF).
	ErrAborted = errors.New("aborted")
)
