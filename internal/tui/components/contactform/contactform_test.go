package contactform

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ravelnze/encore/internal/tui/components/datepicker"
)

func typeKeys(m Model, s string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, r := range s {
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m, cmd
}

func findPick(cmd tea.Cmd) *datepicker.PickedMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case datepicker.PickedMsg:
		return &msg
	case tea.BatchMsg:
		for _, c := range msg {
			if p := findPick(c); p != nil {
				return p
			}
		}
	}
	return nil
}

func TestTabCyclesThroughAllFields(t *testing.T) {
	m := New()
	if m.Focus() != fieldFirstName {
		t.Fatalf("initial focus = %d, want first name field", m.Focus())
	}

	for i := 1; i <= fieldCount; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		if want := i % fieldCount; m.Focus() != want {
			t.Fatalf("after %d tabs focus = %d, want %d", i, m.Focus(), want)
		}
	}
}

func TestShiftTabWrapsBackward(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Focus() != fieldComments {
		t.Errorf("shift+tab from first field moved focus to %d, want comments", m.Focus())
	}
}

func TestTypingGoesToFocusedFieldOnly(t *testing.T) {
	m := New()
	m, _ = typeKeys(m, "Alice")

	if m.Name() != "Alice" {
		t.Errorf("name = %q, want Alice", m.Name())
	}
	if m.Email() != "" {
		t.Errorf("email picked up stray input %q", m.Email())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = typeKeys(m, "Reyes")
	if m.Name() != "Alice Reyes" {
		t.Errorf("name = %q, want Alice Reyes", m.Name())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = typeKeys(m, "a@b.cd")
	if m.Email() != "a@b.cd" {
		t.Errorf("email = %q, want a@b.cd", m.Email())
	}
	if m.Name() != "Alice Reyes" {
		t.Errorf("name changed to %q", m.Name())
	}
}

func TestPickCommitsDate(t *testing.T) {
	m := New()
	want := time.Date(2026, time.October, 3, 0, 0, 0, 0, time.UTC)

	m, _ = m.Update(datepicker.PickedMsg{Date: want})

	if m.Date() == nil || !m.Date().Equal(want) {
		t.Errorf("committed date = %v, want %v", m.Date(), want)
	}
}

func TestTypedDateRoundTripsThroughPick(t *testing.T) {
	m := New()
	for i := 0; i < fieldDate; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}

	m, cmd := typeKeys(m, "2026-10-03")
	pick := findPick(cmd)
	if pick == nil {
		t.Fatal("typing a full date into the picker should announce a pick")
	}

	m, _ = m.Update(*pick)
	want := time.Date(2026, time.October, 3, 0, 0, 0, 0, time.UTC)
	if m.Date() == nil || !m.Date().Equal(want) {
		t.Errorf("committed date = %v, want %v", m.Date(), want)
	}
}

func TestClearingPickerKeepsCommittedDate(t *testing.T) {
	m := New()
	want := time.Date(2026, time.October, 3, 0, 0, 0, 0, time.UTC)
	m, _ = m.Update(datepicker.PickedMsg{Date: want})

	for i := 0; i < fieldDate; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	for i := 0; i < 10; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}

	if m.Date() == nil || !m.Date().Equal(want) {
		t.Errorf("clearing the field changed the committed date to %v", m.Date())
	}
}

func TestFieldLengthsAreCapped(t *testing.T) {
	m := New()
	for i := 0; i < fieldPhone; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}

	m, _ = typeKeys(m, strings.Repeat("5", 30))
	if got := m.inputs[fieldPhone].Value(); len(got) != 20 {
		t.Errorf("phone accepted %d characters, want the 20 character cap", len(got))
	}
}

func TestViewMarksRequiredFields(t *testing.T) {
	view := New().View()

	for _, label := range []string{"First name", "Last name", "Email", "Phone", "Venue", "Wedding date", "Comments"} {
		if !strings.Contains(view, label) {
			t.Errorf("view missing label %q", label)
		}
	}
	if !strings.Contains(view, "*") {
		t.Error("view missing required markers")
	}
}
