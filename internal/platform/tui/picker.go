package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/domino-path/internal/level"
)

// Selection is a picked mode and 1-indexed starting level.
type Selection struct {
	GameID string
	Level  int
}

// PickerKeyMap holds the picker key bindings.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns the bindings shown in the help line.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns every binding.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultPickerKeyMap returns the default picker bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerModel lists the campaign levels and the sandbox in a table.
type PickerModel struct {
	choices  []Selection
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	selected *Selection
	quitting bool
}

// NewPickerModel creates a picker over the given levels.
func NewPickerModel(levels []level.Level, width, height int) PickerModel {
	m := PickerModel{
		help:   help.New(),
		keys:   DefaultPickerKeyMap(),
		width:  width,
		height: height,
	}

	rows := make([]table.Row, 0, len(levels)+1)
	for i, l := range levels {
		m.choices = append(m.choices, Selection{GameID: "dominoes", Level: i + 1})
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			l.Name,
			fmt.Sprintf("%d", len(l.Walls)),
		})
	}
	m.choices = append(m.choices, Selection{GameID: "sandbox", Level: 1})
	rows = append(rows, table.Row{"-", "Sandbox", "0"})

	m.table = m.createTable()
	m.table.SetRows(rows)
	return m
}

func (m PickerModel) createTable() table.Model {
	nameWidth := max(min(m.width-20, 32), 12)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Level", Width: nameWidth},
			{Title: "Walls", Width: 6},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.choices) {
				sel := m.choices[i]
				m.selected = &sel
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		rows, cursor := m.table.Rows(), m.table.Cursor()
		m.table = m.createTable()
		m.table.SetRows(rows)
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("D O M I N O   P A T H", m.width)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.table.View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen entry, or nil while none is chosen.
func (m PickerModel) Selected() *Selection {
	return m.selected
}

// IsQuitting reports whether the user asked to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
