// Package carousel renders the music page's photo carousel: a fixed slide
// deck with manual next/previous/jump navigation and a 30-second autoplay.
//
// Autoplay is a cancellable periodic task owned by the carousel's lifecycle.
// Start begins a fresh run and hands back the first tick command; Stop
// cancels the run. Every run carries a sequence number, so a tick that was
// already in flight when the run was cancelled identifies itself as stale
// and is dropped instead of advancing a dismounted carousel.
package carousel

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ravelnze/encore/internal/site"
)

// AutoplayInterval matches the published site's carousel timing.
const AutoplayInterval = 30 * time.Second

// TickMsg is one autoplay beat. Seq names the autoplay run that scheduled
// it; ticks from older runs are ignored.
type TickMsg struct {
	Seq int
}

// NextMsg advances one slide, wrapping at the end.
type NextMsg struct{}

// PrevMsg steps back one slide, wrapping at the start.
type PrevMsg struct{}

// GotoMsg jumps straight to an indicator's slide.
type GotoMsg struct {
	Index int
}

var (
	slideStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Width(46).
			Align(lipgloss.Center)

	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	srcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	counterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	activeDotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	inactiveDotStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238"))
)

type KeyMap struct {
	Prev key.Binding
	Next key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev slide"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next slide"),
		),
	}
}

type Model struct {
	slides  []site.Slide
	keys    KeyMap
	pager   paginator.Model
	index   int
	seq     int
	playing bool
	width   int
	height  int
}

func New(slides []site.Slide) Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = activeDotStyle.Render("●")
	p.InactiveDot = inactiveDotStyle.Render("○")
	p.SetTotalPages(len(slides))
	return Model{
		slides: slides,
		keys:   DefaultKeyMap(),
		pager:  p,
	}
}

// Index returns the current slide position.
func (m Model) Index() int {
	return m.index
}

// Playing reports whether an autoplay run is active.
func (m Model) Playing() bool {
	return m.playing
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Start begins a new autoplay run and returns its first tick. Starting
// invalidates any tick still in flight from an earlier run.
func (m Model) Start() (Model, tea.Cmd) {
	m.playing = true
	m.seq++
	return m, m.tick()
}

// Stop cancels autoplay. The slide position is left alone.
func (m Model) Stop() Model {
	m.playing = false
	return m
}

// TickCmd returns the pending autoplay tick, or nil when stopped. The
// application's Init uses it when the carousel page is the landing page.
func (m Model) TickCmd() tea.Cmd {
	if !m.playing {
		return nil
	}
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	seq := m.seq
	return tea.Tick(AutoplayInterval, func(time.Time) tea.Msg {
		return TickMsg{Seq: seq}
	})
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !m.playing || msg.Seq != m.seq {
			// Stale beat from a cancelled run.
			return m, nil
		}
		return m.advance(1), m.tick()

	case NextMsg:
		return m.advance(1), nil

	case PrevMsg:
		return m.advance(-1), nil

	case GotoMsg:
		if msg.Index >= 0 && msg.Index < len(m.slides) {
			m.index = msg.Index
			m.pager.Page = m.index
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Prev):
			return m, func() tea.Msg { return PrevMsg{} }
		case key.Matches(msg, m.keys.Next):
			return m, func() tea.Msg { return NextMsg{} }
		}
		// Digits jump to the matching indicator dot.
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			idx := int(s[0] - '1')
			if idx < len(m.slides) {
				return m, func() tea.Msg { return GotoMsg{Index: idx} }
			}
		}
	}
	return m, nil
}

func (m Model) advance(delta int) Model {
	if len(m.slides) == 0 {
		return m
	}
	m.index = (m.index + delta + len(m.slides)) % len(m.slides)
	m.pager.Page = m.index
	return m
}

func (m Model) View() string {
	if len(m.slides) == 0 {
		return ""
	}
	s := m.slides[m.index]

	frame := slideStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		captionStyle.Render(s.Caption),
		"",
		srcStyle.Render(s.Src),
	))

	controls := lipgloss.JoinHorizontal(lipgloss.Center,
		counterStyle.Render("◀ "),
		m.pager.View(),
		counterStyle.Render(" ▶"),
		counterStyle.Render(fmt.Sprintf("  %d/%d", m.index+1, len(m.slides))),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, frame, controls)
	if m.width > 0 {
		return lipgloss.Place(m.width, lipgloss.Height(content), lipgloss.Center, lipgloss.Top, content)
	}
	return content
}
