package app

import (
	"github.com/jmagar/ytui/internal/model"
	"github.com/jmagar/ytui/internal/prompt"
)

// SelectEntry shows "<n>. <title>" for each entry and returns the chosen one.
func SelectEntry(p prompt.Prompter, entries []model.Entry) (model.Entry, error) {
	idx, err := p.Select("Select media to download:", model.EntryLabels(entries), 0)
	if err != nil {
		return model.Entry{}, err
	}
	return entries[idx], nil
}
