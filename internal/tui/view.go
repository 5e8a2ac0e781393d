package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Ravelnze/encore/internal/router"
	"github.com/Ravelnze/encore/internal/site"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.page {
	case router.Home:
		content = m.viewHome()
	case router.Reception:
		content = m.viewReception()
	case router.Music:
		content = m.viewMusic()
	case router.Contact:
		content = m.viewContact()
	case router.NotFound:
		content = m.viewNotFound()
	}

	// The booking dialog takes the content area over while visible.
	if m.modal.Visible() && m.form != nil {
		content = m.modal.View(m.form.View())
	}

	// The address prompt sits where the help bar normally is.
	footer := m.help.View(m)
	if m.locating {
		footer = m.locInput.View()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.navbar.View(),
		content,
		footer,
	)
	return ui
}

func (m Model) viewHome() string {
	lines := []string{
		heroTitleStyle.Render(site.Brand),
		taglineStyle.Render(site.Tagline),
		"",
		imageStyle.Render(site.CoverImage),
		"",
	}
	for _, p := range site.HomeIntro() {
		lines = append(lines, p, "")
	}
	lines = append(lines, ctaStyle.Render("Press b to ask about your date."))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewReception() string {
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render("Reception"),
		imageStyle.Render(site.ReceptionImage),
		"",
		m.reception.View(),
	))
}

func (m Model) viewMusic() string {
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render("Music"),
		"",
		m.carousel.View(),
		"",
		m.setlist.View(),
	))
}

func (m Model) viewContact() string {
	lines := []string{
		sectionTitleStyle.Render("Contact"),
		imageStyle.Render(site.ContactImage),
		"",
	}
	for _, p := range site.ContactIntro() {
		lines = append(lines, p, "")
	}
	if m.enquiryRef != "" {
		lines = append(lines,
			confirmStyle.Render(fmt.Sprintf("Enquiry drafted (ref %s). We'll be in touch.", m.enquiryRef)),
			"",
		)
	}
	lines = append(lines, m.contact.View(), "")
	if m.editing {
		lines = append(lines, hintStyle.Render("esc stops editing"))
	} else {
		lines = append(lines, hintStyle.Render("enter starts editing"))
	}
	lines = append(lines,
		"",
		contactLineStyle.Render("✉ "+site.Email),
		contactLineStyle.Render("☎ "+site.Phone),
	)
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewNotFound() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("404"),
			"This page does not exist.",
			"",
			hintStyle.Render(fmt.Sprintf("last location: %s", m.location)),
			hintStyle.Render("press m for the menu or tab for the next page"),
		),
	)
}
