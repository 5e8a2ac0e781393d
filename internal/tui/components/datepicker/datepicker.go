// Package datepicker is a single-line date field for the contact form.
//
// A pick happens only when the field holds a complete date in canonical
// YYYY-MM-DD form; every pick is announced with PickedMsg. Editing the field
// into something incomplete or invalid never retracts the last pick, so the
// committed wedding date survives a half-deleted field.
package datepicker

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DateLayout is the accepted input form.
const DateLayout = "2006-01-02"

// PickedMsg announces a newly picked date.
type PickedMsg struct {
	Date time.Time
}

var pickedStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205"))

type Model struct {
	input  textinput.Model
	picked *time.Time
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = len(DateLayout)
	ti.Width = 14
	return Model{input: ti}
}

// Picked returns the last picked date, or nil before the first pick.
func (m Model) Picked() *time.Time {
	return m.picked
}

// Value returns the raw field text.
func (m Model) Value() string {
	return m.input.Value()
}

func (m Model) Focused() bool {
	return m.input.Focused()
}

func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Blur() {
	m.input.Blur()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if t, ok := parse(m.input.Value()); ok {
		if m.picked == nil || !m.picked.Equal(t) {
			m.picked = &t
			return m, tea.Batch(cmd, func() tea.Msg { return PickedMsg{Date: t} })
		}
	}
	return m, cmd
}

// parse accepts only complete, zero-padded dates. Prefixes of a date being
// typed, such as "2026-08-2", are not picks.
func parse(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return time.Time{}, false
	}
	return t, true
}

func (m Model) View() string {
	v := m.input.View()
	if m.picked != nil {
		v = lipgloss.JoinVertical(lipgloss.Left,
			v,
			pickedStyle.Render("✔ "+m.picked.Format("Monday, 2 January 2006")),
		)
	}
	return v
}
