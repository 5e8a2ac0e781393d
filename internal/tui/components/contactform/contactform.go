// Package contactform is the enquiry form on the contact page: free-text
// fields, a wedding date picker and a comments box, with tab cycling
// between them.
//
// The committed wedding date changes only when the picker announces a pick.
// Anything else the picker's field goes through, including being cleared,
// leaves the committed date alone.
package contactform

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ravelnze/encore/internal/tui/components/datepicker"
)

const (
	fieldFirstName = iota
	fieldLastName
	fieldEmail
	fieldPhone
	fieldVenue
	fieldDate
	fieldComments
	fieldCount
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	requiredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	blurredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type KeyMap struct {
	Next key.Binding
	Prev key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
	}
}

type Model struct {
	inputs   []textinput.Model
	picker   datepicker.Model
	comments textarea.Model
	keys     KeyMap
	date     *time.Time
	focus    int
	width    int
}

func New() Model {
	mk := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Width = 40
		ti.PromptStyle = blurredStyle
		return ti
	}

	inputs := []textinput.Model{
		fieldFirstName: mk("First name", 64),
		fieldLastName:  mk("Last name", 64),
		fieldEmail:     mk("you@example.com", 64),
		fieldPhone:     mk("Phone number", 20),
		fieldVenue:     mk("Ceremony or reception venue", 64),
	}

	ta := textarea.New()
	ta.Placeholder = "Tell us about your day"
	ta.CharLimit = 400
	ta.SetWidth(42)
	ta.SetHeight(3)

	m := Model{
		inputs:   inputs,
		picker:   datepicker.New(),
		comments: ta,
		keys:     DefaultKeyMap(),
	}
	m.applyFocus(fieldFirstName)
	return m
}

// Name returns the first and last name joined for display.
func (m Model) Name() string {
	return strings.TrimSpace(m.inputs[fieldFirstName].Value() + " " + m.inputs[fieldLastName].Value())
}

// Email returns the email field's text.
func (m Model) Email() string {
	return m.inputs[fieldEmail].Value()
}

// Date returns the committed wedding date, or nil when none has been picked.
func (m Model) Date() *time.Time {
	return m.date
}

// Comments returns the comments box text.
func (m Model) Comments() string {
	return m.comments.Value()
}

// Focus reports which field currently has focus.
func (m Model) Focus() int {
	return m.focus
}

func (m *Model) SetSize(width, _ int) {
	m.width = width
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case datepicker.PickedMsg:
		m.date = &msg.Date
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Next):
			return m, m.applyFocus((m.focus + 1) % fieldCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.applyFocus((m.focus - 1 + fieldCount) % fieldCount)
		}
		return m.updateFocused(msg)
	}

	// Everything else, cursor blinks included, goes to all fields.
	cmds := make([]tea.Cmd, 0, fieldCount)
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	cmds = append(cmds, cmd)
	m.comments, cmd = m.comments.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldDate:
		m.picker, cmd = m.picker.Update(msg)
	case fieldComments:
		m.comments, cmd = m.comments.Update(msg)
	default:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m *Model) applyFocus(target int) tea.Cmd {
	m.focus = target

	var cmd tea.Cmd
	for i := range m.inputs {
		if i == target {
			cmd = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
			continue
		}
		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = blurredStyle
		m.inputs[i].TextStyle = lipgloss.NewStyle()
	}

	if target == fieldDate {
		cmd = m.picker.Focus()
	} else {
		m.picker.Blur()
	}

	if target == fieldComments {
		cmd = m.comments.Focus()
	} else {
		m.comments.Blur()
	}

	return cmd
}

func (m Model) View() string {
	label := func(text string, required bool) string {
		if required {
			return labelStyle.Render(text) + requiredStyle.Render(" *")
		}
		return labelStyle.Render(text)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		label("First name", true),
		m.inputs[fieldFirstName].View(),
		"",
		label("Last name", true),
		m.inputs[fieldLastName].View(),
		"",
		label("Email", true),
		m.inputs[fieldEmail].View(),
		"",
		label("Phone", false),
		m.inputs[fieldPhone].View(),
		"",
		label("Venue", false),
		m.inputs[fieldVenue].View(),
		"",
		label("Wedding date", false),
		m.picker.View(),
		"",
		label("Comments", false),
		m.comments.View(),
	)
}
