package testutil

import (
	"fmt"
	"testing"
)

// Answer is one scripted reply. Exactly one of the value fields is used,
// depending on the prompt kind that consumes it.
type Answer struct {
	Index   int
	Text    string
	Confirm bool
	Err     error
}

// ScriptedPrompter replays answers in order and records every label asked.
// It fails the test if the script runs out.
type ScriptedPrompter struct {
	t       *testing.T
	answers []Answer
	Asked   []string
}

// NewScriptedPrompter returns a prompter that will hand out answers in order.
func NewScriptedPrompter(t *testing.T, answers ...Answer) *ScriptedPrompter {
	return &ScriptedPrompter{t: t, answers: answers}
}

func (p *ScriptedPrompter) next(kind, label string) Answer {
	p.t.Helper()
	p.Asked = append(p.Asked, label)
	if len(p.answers) == 0 {
		p.t.Fatalf("unexpected %s prompt %q: script exhausted", kind, label)
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a
}

// Select implements prompt.Prompter.
func (p *ScriptedPrompter) Select(label string, items []string, _ int) (int, error) {
	a := p.next("select", label)
	if a.Err != nil {
		return 0, a.Err
	}
	if a.Index < 0 || a.Index >= len(items) {
		return 0, fmt.Errorf("scripted index %d out of range for %q", a.Index, label)
	}
	return a.Index, nil
}

// Input implements prompt.Prompter.
func (p *ScriptedPrompter) Input(label, defaultValue string) (string, error) {
	a := p.next("input", label)
	if a.Err != nil {
		return "", a.Err
	}
	if a.Text == "" {
		return defaultValue, nil
	}
	return a.Text, nil
}

// Confirm implements prompt.Prompter.
func (p *ScriptedPrompter) Confirm(label string) (bool, error) {
	a := p.next("confirm", label)
	return a.Confirm, a.Err
}

// Pause implements prompt.Prompter.
func (p *ScriptedPrompter) Pause(message string) error {
	return p.next("pause", message).Err
}

// Remaining reports how many scripted answers were not consumed.
func (p *ScriptedPrompter) Remaining() int {
	return len(p.answers)
}

// Pick is shorthand for a Select answer.
func Pick(i int) Answer { return Answer{Index: i} }

// Type is shorthand for an Input answer.
func Type(s string) Answer { return Answer{Text: s} }

// Yes and No are Confirm answers; Enter is a Pause answer.
var (
	Yes   = Answer{Confirm: true}
	No    = Answer{Confirm: false}
	Enter = Answer{}
)
