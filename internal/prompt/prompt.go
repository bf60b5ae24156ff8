// Package prompt wraps promptui behind a small interface so the session
// flow can be driven by a script in tests.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jmagar/ytui/internal/model"
	"github.com/manifoldco/promptui"
)

// Prompter asks the user single-choice and free-text questions.
type Prompter interface {
	// Select returns the index of the chosen item.
	Select(label string, items []string, defaultIndex int) (int, error)
	// Input returns a non-blank, trimmed answer.
	Input(label, defaultValue string) (string, error)
	// Confirm returns true for yes.
	Confirm(label string) (bool, error)
	// Pause waits for Enter.
	Pause(message string) error
}

// Terminal is the interactive promptui-backed Prompter.
type Terminal struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NewTerminal returns a Prompter bound to the process stdio.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Select implements Prompter.
func (t *Terminal) Select(label string, items []string, defaultIndex int) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("select %q: no choices", label)
	}
	if defaultIndex < 0 || defaultIndex >= len(items) {
		defaultIndex = 0
	}
	size := len(items)
	if size > 10 {
		size = 10
	}
	sel := promptui.Select{
		Label:     label,
		Items:     items,
		Size:      size,
		CursorPos: defaultIndex,
		HideHelp:  true,
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	}
	idx, _, err := sel.Run()
	if err != nil {
		return 0, translate(err)
	}
	return idx, nil
}

// Input implements Prompter.
func (t *Terminal) Input(label, defaultValue string) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   defaultValue,
		AllowEdit: defaultValue != "",
		Validate:  NonBlank,
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	}
	answer, err := p.Run()
	if err != nil {
		return "", translate(err)
	}
	return strings.TrimSpace(answer), nil
}

// Confirm implements Prompter.
func (t *Terminal) Confirm(label string) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	}
	_, err := p.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, translate(err)
	}
	return true, nil
}

// Pause implements Prompter.
func (t *Terminal) Pause(message string) error {
	p := promptui.Prompt{
		Label:       message,
		HideEntered: true,
		Stdin:       t.Stdin,
		Stdout:      t.Stdout,
	}
	_, err := p.Run()
	return translate(err)
}

// NonBlank rejects empty answers.
func NonBlank(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("a value is required")
	}
	return nil
}

// translate maps promptui cancellation to model.ErrAborted.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return model.ErrAborted
	}
	return fmt.Errorf("prompt failed: %w", err)
}
