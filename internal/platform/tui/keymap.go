package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/domino-path/internal/core"
)

// GameKeyMap holds the in-game key bindings.
type GameKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Place       key.Binding
	Undo        key.Binding
	Clear       key.Binding
	Start       key.Binding
	RestartPath key.Binding
	NextLevel   key.Binding
	Back        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns the bindings shown in the collapsed help line.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Place, k.Undo, k.Start, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped in columns.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Place, k.Undo, k.Clear},
		{k.Start, k.RestartPath, k.NextLevel},
		{k.Back, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns the default bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "cursor right"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter/click", "place waypoint"),
		),
		Undo: key.NewBinding(
			key.WithKeys("z", "r", "backspace"),
			key.WithHelp("z/r", "undo"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear path"),
		),
		Start: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start"),
		),
		RestartPath: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "back to drawing"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
type KeyMapper struct {
	Keys GameKeyMap
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultGameKeyMap()}
}

// MapKey translates a key message to an action. Keys without a game action
// (help, back) map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	k := km.Keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Place):
		return core.ActionPlace
	case key.Matches(msg, k.Undo):
		return core.ActionUndo
	case key.Matches(msg, k.Clear):
		return core.ActionClear
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.RestartPath):
		return core.ActionRestartPath
	case key.Matches(msg, k.NextLevel):
		return core.ActionNextLevel
	}
	return core.ActionNone
}

// MapKeyToFrame records a key's action in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	if action == core.ActionQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return false
}

// MapMouseToFrame records the pointer position, and a placement on a left
// button press. Once a frame holds a placement its pointer stays at the
// click.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	latched := frame.Has(core.ActionPlace)
	switch msg.Action {
	case tea.MouseActionPress:
		if !latched {
			frame.PointAt(msg.X, msg.Y)
		}
		if msg.Button == tea.MouseButtonLeft {
			frame.Set(core.ActionPlace)
		}
		if msg.Button == tea.MouseButtonRight {
			frame.Set(core.ActionUndo)
		}
	case tea.MouseActionMotion:
		if !latched {
			frame.PointAt(msg.X, msg.Y)
		}
	}
}
