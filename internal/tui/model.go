package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/Ravelnze/encore/internal/router"
	"github.com/Ravelnze/encore/internal/site"
	"github.com/Ravelnze/encore/internal/tui/components/carousel"
	"github.com/Ravelnze/encore/internal/tui/components/contactform"
	"github.com/Ravelnze/encore/internal/tui/components/modal"
	"github.com/Ravelnze/encore/internal/tui/components/navbar"
	"github.com/Ravelnze/encore/internal/tui/components/setlist"
)

// EnquiryForm backs the booking dialog's fields.
type EnquiryForm struct {
	Name    string
	Email   string
	Date    string
	Message string
}

type Model struct {
	page       router.Route
	location   string
	keys       KeyMap
	help       help.Model
	navbar     navbar.Model
	carousel   carousel.Model
	setlist    setlist.Model
	contact    contactform.Model
	reception  viewport.Model
	modal      modal.Model
	form       *huh.Form
	enquiry    *EnquiryForm
	enquiryRef string
	locInput   textinput.Model
	locating   bool
	editing    bool
	quitting   bool
	width      int
	height     int
}

// NewModel builds the app on the page the given location hash decodes to.
func NewModel(hash string) Model {
	rv := viewport.New(0, 0)
	rv.SetContent(site.ReceptionCopy())

	// The address bar, opened on demand with ":".
	loc := textinput.New()
	loc.Prompt = "go to: "
	loc.Placeholder = "#music"
	loc.CharLimit = 32
	loc.Width = 24

	m := Model{
		page:      router.Decode(hash),
		location:  hash,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		navbar:    navbar.New(),
		carousel:  carousel.New(site.Slides()),
		setlist:   setlist.New(site.Songs(), 0, 0),
		contact:   contactform.New(),
		reception: rv,
		modal:     modal.New("Booking enquiry"),
		locInput:  loc,
	}
	m.navbar = m.navbar.SetActive(m.page)

	if m.page == router.Music {
		m.carousel, _ = m.carousel.Start()
	}

	return m
}

// Page returns the current page.
func (m Model) Page() router.Route {
	return m.page
}

// Location returns the location hash as last navigated to.
func (m Model) Location() string {
	return m.location
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Menu, m.keys.NextPage, m.keys.Quit, m.keys.Help}
	switch m.page {
	case router.Music:
		keys = append(keys, carousel.DefaultKeyMap().Prev, carousel.DefaultKeyMap().Next)
	case router.Contact:
		keys = append(keys, m.keys.Edit, m.keys.Book)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Menu, m.keys.NextPage, m.keys.PrevPage, m.keys.Location, m.keys.Book, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.page {
	case router.Music:
		ck := carousel.DefaultKeyMap()
		actions = []key.Binding{ck.Prev, ck.Next}
	case router.Contact:
		fk := contactform.DefaultKeyMap()
		actions = []key.Binding{m.keys.Edit, fk.Next, fk.Prev}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return m.carousel.TickCmd()
}
