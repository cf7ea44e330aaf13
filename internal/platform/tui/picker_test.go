package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/domino-path/internal/core"
	"github.com/vovakirdan/domino-path/internal/level"
)

var pickerLevels = []level.Level{
	{ID: "01", Name: "First"},
	{ID: "02", Name: "Second", Walls: []level.Wall{{Width: 1, Depth: 1}}},
}

func pickerUpdate(t *testing.T, m PickerModel, msg tea.Msg) PickerModel {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(PickerModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return pm
}

func TestPickerSelectsLevel(t *testing.T) {
	m := NewPickerModel(pickerLevels, 80, 24)
	if m.Selected() != nil {
		t.Fatal("selection before input")
	}

	m = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil || sel.GameID != "dominoes" || sel.Level != 2 {
		t.Errorf("Selected = %+v, want dominoes level 2", sel)
	}
}

func TestPickerSandboxRow(t *testing.T) {
	m := NewPickerModel(pickerLevels, 80, 24)
	for range 5 {
		m = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if sel := m.Selected(); sel == nil || sel.GameID != "sandbox" {
		t.Errorf("Selected = %+v, want sandbox", sel)
	}
}

func TestPickerView(t *testing.T) {
	m := NewPickerModel(pickerLevels, 80, 24)
	view := m.View()
	for _, want := range []string{"D O M I N O", "First", "Second", "Sandbox"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q did not quit the picker")
	}
}

func TestSessionModelFlow(t *testing.T) {
	m := NewSessionModel(pickerLevels, core.DefaultConfig(), "tester", nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	if m.game == nil {
		t.Fatal("enter did not start a game")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	if m.game != nil {
		t.Error("esc did not return to the picker")
	}
}
