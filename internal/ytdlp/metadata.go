package ytdlp

import (
	"encoding/json"
	"fmt"

	"github.com/jmagar/ytui/internal/helpers"
	"github.com/jmagar/ytui/internal/model"
)

// ParseMetadata decodes a JSON dump and normalizes it: an object with a
// non-empty "entries" array becomes an EntryList, anything else a
// SingleEntry. On invalid JSON the error wraps model.ErrMetadataParse and
// carries stderr, or stdout when stderr is empty.
func ParseMetadata(stdout, stderr string) (model.Metadata, error) {
	var doc any
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		if diag := helpers.FirstNonEmpty(stderr, stdout); diag != "" {
			return model.Metadata{}, fmt.Errorf("%w\n%s", model.ErrMetadataParse, diag)
		}
		return model.Metadata{}, model.ErrMetadataParse
	}

	obj, _ := doc.(map[string]any)
	if items, ok := obj["entries"].([]any); ok && len(items) > 0 {
		entries := make([]model.Entry, len(items))
		for i, item := range items {
			fields, _ := item.(map[string]any)
			entries[i] = model.NewEntry(fields)
		}
		return model.Metadata{Kind: model.EntryList, Entries: entries}, nil
	}
	return model.Metadata{Kind: model.SingleEntry, Entries: []model.Entry{model.NewEntry(obj)}}, nil
}
