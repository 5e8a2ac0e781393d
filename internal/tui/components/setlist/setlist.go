// Package setlist shows the band's sample repertoire on the music page as a
// scrollable, filterable list.
package setlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ravelnze/encore/internal/site"
)

type Item struct {
	Song site.Song
}

func (i Item) Title() string { return i.Song.Title }
func (i Item) Description() string {
	return fmt.Sprintf("%s | %s", i.Song.Artist, i.Song.Moment)
}
func (i Item) FilterValue() string { return i.Song.Title + " " + i.Song.Artist }

type Model struct {
	list list.Model
}

func New(songs []site.Song, width, height int) Model {
	items := make([]list.Item, len(songs))
	for i, s := range songs {
		items[i] = Item{Song: s}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Sample setlist"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	return Model{list: l}
}

// Filtering reports whether the user is typing a filter, in which case
// keystrokes belong to the list and not to global shortcuts.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
