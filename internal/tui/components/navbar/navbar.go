// Package navbar renders the site's navigation bar. On a wide window the
// links sit inline next to the brand; below the collapse width the bar
// folds into a burger line whose menu is toggled open and closed, the way
// the original site's navbar collapses on small screens.
package navbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ravelnze/encore/internal/router"
	"github.com/Ravelnze/encore/internal/site"
)

// ToggledMsg carries the navbar's new open-state. The application model
// stores it verbatim; nothing else about the navbar changes with it.
type ToggledMsg struct {
	Open bool
}

// collapseWidth is the window width below which the link row folds into
// the burger menu.
const collapseWidth = 72

var (
	barStyle = lipgloss.NewStyle().
			Padding(0, 1)

	brandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	activeLinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	burgerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	menuCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type link struct {
	title string
	hash  string
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close menu"),
		),
	}
}

type Model struct {
	links  []link
	keys   KeyMap
	cursor int
	open   bool
	active router.Route
	width  int
}

func New() Model {
	var links []link
	for _, r := range router.Pages() {
		links = append(links, link{title: router.Title(r), hash: router.Fragment(r)})
	}
	return Model{links: links, keys: DefaultKeyMap()}
}

// Open reports whether the collapsed menu is expanded.
func (m Model) Open() bool {
	return m.open
}

// SetOpen replaces the open-state verbatim.
func (m Model) SetOpen(open bool) Model {
	m.open = open
	return m
}

// SetActive highlights the link for the current page.
func (m Model) SetActive(r router.Route) Model {
	m.active = r
	for i, l := range m.links {
		if l.hash == router.Fragment(r) {
			m.cursor = i
		}
	}
	return m
}

// Collapsed reports whether the bar is in burger mode at the current width.
func (m Model) Collapsed() bool {
	return m.width > 0 && m.width < collapseWidth
}

func (m *Model) SetSize(width int) {
	m.width = width
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update moves the menu cursor and turns selections into navigation
// events. It only reacts to keys while the menu is open; the open/close
// toggle itself is a ToggledMsg applied by the parent.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.links)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			hash := m.links[m.cursor].hash
			// Navigate and fold the menu away, in that order.
			return m, tea.Batch(
				func() tea.Msg { return router.LocationChangedMsg{Hash: hash} },
				func() tea.Msg { return ToggledMsg{Open: false} },
			)
		case key.Matches(msg, m.keys.Close):
			return m, func() tea.Msg { return ToggledMsg{Open: false} }
		}
	}
	return m, nil
}

// View draws the bar and, while the menu is open, the link list below it.
// The link list appears for wide bars too, so the keyboard focus the open
// menu holds is always visible.
func (m Model) View() string {
	bar := m.viewBar()
	if !m.open {
		return barStyle.Render(bar)
	}

	var b strings.Builder
	b.WriteString(bar)
	for i, l := range m.links {
		b.WriteString("\n")
		cursor := "  "
		if i == m.cursor {
			cursor = menuCursorStyle.Render("▸ ")
		}
		title := l.title
		if l.hash == router.Fragment(m.active) {
			title = activeLinkStyle.Render(title)
		} else {
			title = linkStyle.Render(title)
		}
		b.WriteString("  " + cursor + title)
	}
	return barStyle.Render(b.String())
}

func (m Model) viewBar() string {
	if m.Collapsed() {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			brandStyle.Render("♪ "+site.Brand),
			burgerStyle.Render("≡"),
		)
	}
	parts := []string{brandStyle.Render("♪ " + site.Brand)}
	for _, l := range m.links {
		if l.hash == router.Fragment(m.active) {
			parts = append(parts, activeLinkStyle.Render(l.title))
		} else {
			parts = append(parts, linkStyle.Render(l.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
