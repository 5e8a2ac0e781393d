package modal

import (
	"strings"
	"testing"
)

func TestHiddenModalRendersNothing(t *testing.T) {
	m := New("Booking enquiry")
	if got := m.View("anything"); got != "" {
		t.Errorf("hidden modal rendered %q", got)
	}
}

func TestSetVisibleIsVerbatim(t *testing.T) {
	m := New("Booking enquiry")

	m = m.SetVisible(true)
	m = m.SetVisible(true)
	if !m.Visible() {
		t.Error("applying visible twice should leave the dialog visible")
	}

	m = m.SetVisible(false)
	m = m.SetVisible(false)
	if m.Visible() {
		t.Error("applying hidden twice should leave the dialog hidden")
	}
}

func TestVisibleModalFramesContent(t *testing.T) {
	m := New("Booking enquiry").SetVisible(true)

	view := m.View("your name here")
	if !strings.Contains(view, "Booking enquiry") {
		t.Error("view missing dialog title")
	}
	if !strings.Contains(view, "your name here") {
		t.Error("view missing dialog content")
	}
	if !strings.Contains(view, "esc closes") {
		t.Error("view missing close hint")
	}
}
