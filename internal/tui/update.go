package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Ravelnze/encore/internal/router"
	"github.com/Ravelnze/encore/internal/site"
	"github.com/Ravelnze/encore/internal/tui/components/carousel"
	"github.com/Ravelnze/encore/internal/tui/components/datepicker"
	"github.com/Ravelnze/encore/internal/tui/components/modal"
	"github.com/Ravelnze/encore/internal/tui/components/navbar"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Booking dialog takes over input while visible. Autoplay beats still
	// belong to the carousel running behind it.
	if m.modal.Visible() && m.form != nil {
		switch msg := msg.(type) {
		case carousel.TickMsg, carousel.NextMsg, carousel.PrevMsg, carousel.GotoMsg:
			var cmd tea.Cmd
			m.carousel, cmd = m.carousel.Update(msg)
			return m, cmd
		case tea.KeyMsg:
			if msg.Type == tea.KeyEsc {
				m.modal = m.modal.SetVisible(false)
				return m, nil
			}
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			m.enquiryRef = uuid.New().String()[:8]
			m.modal = m.modal.SetVisible(false)
		case huh.StateAborted:
			m.modal = m.modal.SetVisible(false)
		}
		return m, tea.Batch(cmds...)
	}

	// The address prompt owns the keyboard while open. Whatever is typed is
	// handed to the router verbatim; Decode never fails, so there is nothing
	// to reject here.
	if m.locating {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.Type {
			case tea.KeyEsc:
				m.locating = false
				m.locInput.Blur()
				return m, nil
			case tea.KeyCtrlC:
				m.quitting = true
				return m, tea.Quit
			case tea.KeyEnter:
				hash := m.locInput.Value()
				m.locating = false
				m.locInput.Blur()
				return m, func() tea.Msg { return router.LocationChangedMsg{Hash: hash} }
			}
			var cmd tea.Cmd
			m.locInput, cmd = m.locInput.Update(msg)
			return m, cmd
		}
	}

	// Contact form focus mode: keys belong to the form until esc.
	if m.editing && m.page == router.Contact {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.Type {
			case tea.KeyEsc:
				m.editing = false
				return m, nil
			case tea.KeyCtrlC:
				m.quitting = true
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.contact, cmd = m.contact.Update(msg)
			return m, cmd
		}
	}

	// The open menu owns the keyboard until it closes.
	if m.navbar.Open() {
		if msg, ok := msg.(tea.KeyMsg); ok {
			if msg.Type == tea.KeyCtrlC {
				m.quitting = true
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.navbar, cmd = m.navbar.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case router.LocationChangedMsg:
		return m.setLocation(msg.Hash)

	case navbar.ToggledMsg:
		m.navbar = m.navbar.SetOpen(msg.Open)
		return m, nil

	case modal.ToggledMsg:
		if !msg.Visible {
			m.modal = m.modal.SetVisible(false)
			return m, nil
		}
		return m.openBooking()

	case datepicker.PickedMsg:
		var cmd tea.Cmd
		m.contact, cmd = m.contact.Update(msg)
		return m, cmd

	case carousel.TickMsg, carousel.NextMsg, carousel.PrevMsg, carousel.GotoMsg:
		var cmd tea.Cmd
		m.carousel, cmd = m.carousel.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.page == router.Music && m.setlist.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextPage):
			return m, navigate(router.Next(m.page))
		case key.Matches(msg, m.keys.PrevPage):
			return m, navigate(router.Prev(m.page))
		case key.Matches(msg, m.keys.Menu):
			open := !m.navbar.Open()
			return m, func() tea.Msg { return navbar.ToggledMsg{Open: open} }
		case key.Matches(msg, m.keys.Location):
			m.locating = true
			m.locInput.Reset()
			return m, m.locInput.Focus()
		case key.Matches(msg, m.keys.Book):
			return m, func() tea.Msg { return modal.ToggledMsg{Visible: true} }
		case key.Matches(msg, m.keys.Edit):
			if m.page == router.Contact {
				m.editing = true
				return m, m.contact.Init()
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.page {
	case router.Music:
		if msg, ok := msg.(tea.KeyMsg); ok && !m.setlist.Filtering() {
			m.carousel, cmd = m.carousel.Update(msg)
			if cmd != nil {
				return m, cmd
			}
		}
		m.setlist, cmd = m.setlist.Update(msg)
		cmds = append(cmds, cmd)

	case router.Reception:
		m.reception, cmd = m.reception.Update(msg)
		cmds = append(cmds, cmd)

	case router.Contact:
		if _, ok := msg.(tea.KeyMsg); !ok {
			m.contact, cmd = m.contact.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// setLocation is the only place the current page changes. Navigating to the
// page already shown only re-records the hash. The carousel's autoplay runs
// exactly while the music page is shown; its slide position survives
// leaving the page.
func (m Model) setLocation(hash string) (tea.Model, tea.Cmd) {
	page := router.Decode(hash)
	m.location = hash
	if page == m.page {
		return m, nil
	}

	prev := m.page
	m.page = page
	m.editing = false
	m.navbar = m.navbar.SetActive(page)

	var cmds []tea.Cmd
	switch {
	case page == router.Music:
		var cmd tea.Cmd
		m.carousel, cmd = m.carousel.Start()
		cmds = append(cmds, cmd)
	case prev == router.Music:
		m.carousel = m.carousel.Stop()
	}

	return m, tea.Batch(cmds...)
}

// navigate emits the location change for the given page.
func navigate(page router.Route) tea.Cmd {
	return func() tea.Msg {
		return router.LocationChangedMsg{Hash: router.Fragment(page)}
	}
}

func (m Model) openBooking() (tea.Model, tea.Cmd) {
	fm := &EnquiryForm{
		Name:  m.contact.Name(),
		Email: m.contact.Email(),
	}
	if d := m.contact.Date(); d != nil {
		fm.Date = d.Format(datepicker.DateLayout)
	}
	m.enquiry = fm
	m.form = NewEnquiryForm(fm)
	m.modal = m.modal.SetVisible(true)
	m.editing = false
	return m, m.form.Init()
}

// carouselHeight approximates the rendered carousel's rows, leaving the
// rest of the music page to the setlist.
const carouselHeight = 10

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	// Adjust height for the nav bar and help
	contentHeight := height - 4

	h, v := docStyle.GetFrameSize()
	m.navbar.SetSize(width)
	m.modal.SetSize(width, height)
	m.carousel.SetSize(width-h, 0)
	m.setlist.SetSize(width-h, contentHeight-v-carouselHeight)
	m.contact.SetSize(width-h, contentHeight-v)
	m.reception.Width = width - h
	m.reception.Height = contentHeight - v
	m.reception.SetContent(lipgloss.NewStyle().Width(m.reception.Width).Render(site.ReceptionCopy()))
}
