package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeString(m ComposerModel, s string) ComposerModel {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(ComposerModel)
	}
	return m
}

func pressEnter(m ComposerModel) ComposerModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(ComposerModel)
}

func TestComposerAppend(t *testing.T) {
	m := NewComposerModel()
	m = pressEnter(typeString(m, "element=div"))
	m = pressEnter(typeString(m, "id=main"))

	if got := m.Selector.String(); got != "div#main" {
		t.Errorf("selector = %q, want div#main", got)
	}
	if len(m.Fragments) != 2 {
		t.Errorf("fragments = %v, want 2 entries", m.Fragments)
	}
	if m.Input != "" || m.ErrMsg != "" {
		t.Errorf("input/err not cleared: %q, %q", m.Input, m.ErrMsg)
	}
}

func TestComposerRejectsViolation(t *testing.T) {
	m := pressEnter(typeString(NewComposerModel(), "class=x"))
	m = pressEnter(typeString(m, "id=y"))

	// The rejected fragment must not touch the accumulated selector.
	if got := m.Selector.String(); got != ".x" {
		t.Errorf("selector = %q, want .x", got)
	}
	if !strings.Contains(m.ErrMsg, "arranged in the following order") {
		t.Errorf("ErrMsg = %q, want ordering message", m.ErrMsg)
	}
	if m.Input != "id=y" {
		t.Errorf("rejected input should stay editable, got %q", m.Input)
	}
}

func TestComposerBadSpec(t *testing.T) {
	m := pressEnter(typeString(NewComposerModel(), "div"))
	if !strings.Contains(m.ErrMsg, "expected kind=value") {
		t.Errorf("ErrMsg = %q", m.ErrMsg)
	}
}

func TestComposerBackspace(t *testing.T) {
	m := typeString(NewComposerModel(), "id=x")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(ComposerModel)
	if m.Input != "id=" {
		t.Errorf("input = %q, want id=", m.Input)
	}
}

func TestComposerView(t *testing.T) {
	m := pressEnter(typeString(NewComposerModel(), "element=div"))
	view := m.View()
	if !strings.Contains(view, "div") {
		t.Errorf("view should render the selector:\n%s", view)
	}
	if !strings.Contains(view, "Compose Selector") {
		t.Errorf("view should render the title:\n%s", view)
	}
}
