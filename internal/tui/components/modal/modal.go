// Package modal renders a centered dialog panel that takes over the content
// area while visible. The panel itself is stateless apart from visibility;
// whatever is shown inside it is passed to View by the caller.
package modal

import "github.com/charmbracelet/lipgloss"

// ToggledMsg carries the explicit visibility for the dialog. Applying the
// current value again is a no-op.
type ToggledMsg struct {
	Visible bool
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 3)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	title   string
	visible bool
	width   int
	height  int
}

func New(title string) Model {
	return Model{title: title}
}

// Visible reports whether the dialog is shown.
func (m Model) Visible() bool {
	return m.visible
}

// SetVisible applies the given visibility verbatim.
func (m Model) SetVisible(v bool) Model {
	m.visible = v
	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View frames content in the dialog panel, centered in the component's
// area. While hidden it renders nothing.
func (m Model) View(content string) string {
	if !m.visible {
		return ""
	}
	panel := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		"",
		content,
		"",
		hintStyle.Render("esc closes"),
	))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
	}
	return panel
}
