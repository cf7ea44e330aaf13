package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/domino-path/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"k", runeKey('k'), core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"h", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPlace},
		{"z", runeKey('z'), core.ActionUndo},
		{"r", runeKey('r'), core.ActionUndo},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionUndo},
		{"c", runeKey('c'), core.ActionClear},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionStart},
		{"x", runeKey('x'), core.ActionRestartPath},
		{"n", runeKey('n'), core.ActionNextLevel},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('y'), core.ActionNone},
		{"help", runeKey('?'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame) {
		t.Error("space reported as quit")
	}
	if !frame.Has(core.ActionStart) {
		t.Error("space did not set Start")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q not reported as quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit leaked into the frame")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name      string
		msg       tea.MouseMsg
		wantPlace bool
		wantUndo  bool
		wantPoint bool
	}{
		{
			name:      "left press",
			msg:       tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			wantPlace: true,
			wantPoint: true,
		},
		{
			name:      "right press",
			msg:       tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			wantUndo:  true,
			wantPoint: true,
		},
		{
			name:      "motion",
			msg:       tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion},
			wantPoint: true,
		},
		{
			name: "release",
			msg:  tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			km.MapMouseToFrame(tt.msg, &frame)
			if frame.Has(core.ActionPlace) != tt.wantPlace {
				t.Errorf("Place = %v, want %v", frame.Has(core.ActionPlace), tt.wantPlace)
			}
			if frame.Has(core.ActionUndo) != tt.wantUndo {
				t.Errorf("Undo = %v, want %v", frame.Has(core.ActionUndo), tt.wantUndo)
			}
			if frame.Pointer.Valid != tt.wantPoint {
				t.Errorf("Pointer.Valid = %v, want %v", frame.Pointer.Valid, tt.wantPoint)
			}
			if tt.wantPoint && (frame.Pointer.X != 10 || frame.Pointer.Y != 5) {
				t.Errorf("Pointer = %+v", frame.Pointer)
			}
		})
	}
}

func TestMouseClickLatchesPointer(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionMotion}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 31, Y: 12, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, &frame)

	if !frame.Has(core.ActionPlace) {
		t.Fatal("click lost")
	}
	if frame.Pointer.X != 10 || frame.Pointer.Y != 5 {
		t.Errorf("Pointer = %+v, want the click cell 10,5", frame.Pointer)
	}

	frame.Clear()
	km.MapMouseToFrame(tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionMotion}, &frame)
	if frame.Pointer.X != 30 || frame.Pointer.Y != 12 {
		t.Errorf("Pointer after clear = %+v, want 30,12", frame.Pointer)
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultGameKeyMap()
	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 13 {
		t.Errorf("FullHelp has %d bindings, want 13", n)
	}
	for _, b := range keys.ShortHelp() {
		if b.Help().Key == "" {
			t.Error("short help binding without a key label")
		}
	}
}
