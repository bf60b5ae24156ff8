package model

import (
	"fmt"
	"strings"
)

// Entry is one unit of downloader metadata (a video, or a flattened
// search/playlist item). It is read-only after parsing.
type Entry struct {
	fields map[string]any
}

// NewEntry wraps a decoded JSON object. A nil map yields an empty entry.
func NewEntry(fields map[string]any) Entry {
	return Entry{fields: fields}
}

func (e Entry) stringField(key string) (string, bool) {
	v, ok := e.fields[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// Title returns the entry title, if present.
func (e Entry) Title() (string, bool) { return e.stringField("title") }

// WebpageURL returns the entry's canonical page URL, if present.
func (e Entry) WebpageURL() (string, bool) { return e.stringField("webpage_url") }

// URL returns the entry's direct URL, if present. Flattened search results
// only carry this field.
func (e Entry) URL() (string, bool) { return e.stringField("url") }

// DisplayTitle returns the title or UntitledEntry.
func (e Entry) DisplayTitle() string {
	if t, ok := e.Title(); ok {
		return t
	}
	return UntitledEntry
}

// ResolveURL picks the URL to download: webpage_url, then url, then fallback.
func (e Entry) ResolveURL(fallback string) string {
	if u, ok := e.WebpageURL(); ok {
		return u
	}
	if u, ok := e.URL(); ok {
		return u
	}
	return fallback
}

// MetadataKind tags the shape of a parsed metadata document.
type MetadataKind int

const (
	SingleEntry MetadataKind = iota
	EntryList
)

// String returns the kind name.
func (k MetadataKind) String() string {
	if k == EntryList {
		return "list"
	}
	return "single"
}

// Metadata is the normalized result of a metadata fetch. Entries always has
// at least one element; for SingleEntry it has exactly one.
type Metadata struct {
	Kind    MetadataKind
	Entries []Entry
}

// EntryLabels renders "<n>. <title>" labels for a selection menu.
func EntryLabels(entries []Entry) []string {
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = fmt.Sprintf("%d. %s", i+1, e.DisplayTitle())
	}
	return labels
}
