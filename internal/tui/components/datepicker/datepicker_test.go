package datepicker

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// typeKeys feeds s one keystroke at a time and returns the command from the
// final keystroke.
func typeKeys(m Model, s string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, r := range s {
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m, cmd
}

// findPick walks a possibly batched command looking for a PickedMsg.
func findPick(cmd tea.Cmd) *PickedMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case PickedMsg:
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

func TestTypingCompleteDateEmitsPick(t *testing.T) {
	m := New()
	m.Focus()

	m, cmd := typeKeys(m, "2026-08-25")

	want := time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)
	if m.Picked() == nil {
		t.Fatal("complete date should be picked")
	}
	if !m.Picked().Equal(want) {
		t.Errorf("picked %v, want %v", m.Picked(), want)
	}

	pick := findPick(cmd)
	if pick == nil {
		t.Fatal("completing keystroke should announce the pick")
	}
	if !pick.Date.Equal(want) {
		t.Errorf("announced %v, want %v", pick.Date, want)
	}
}

func TestPrefixesDoNotPick(t *testing.T) {
	m := New()
	m.Focus()

	m, _ = typeKeys(m, "2026-08-2")
	if m.Picked() != nil {
		t.Errorf("prefix %q picked %v", m.Value(), m.Picked())
	}
}

func TestEditingKeepsLastPick(t *testing.T) {
	m := New()
	m.Focus()
	m, _ = typeKeys(m, "2026-08-25")
	want := *m.Picked()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	if m.Value() != "2026-08-2" {
		t.Fatalf("value after backspace = %q", m.Value())
	}
	if m.Picked() == nil || !m.Picked().Equal(want) {
		t.Errorf("backspace changed the pick to %v, want %v", m.Picked(), want)
	}
}

func TestRetypingSameDateDoesNotReannounce(t *testing.T) {
	m := New()
	m.Focus()
	m, _ = typeKeys(m, "2026-08-25")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	m, cmd := typeKeys(m, "5")

	if findPick(cmd) != nil {
		t.Error("restoring the same date should not announce a new pick")
	}
}

func TestNewDateReplacesPick(t *testing.T) {
	m := New()
	m.Focus()
	m, _ = typeKeys(m, "2026-08-25")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = typeKeys(m, "14")

	want := time.Date(2026, time.August, 14, 0, 0, 0, 0, time.UTC)
	if m.Picked() == nil || !m.Picked().Equal(want) {
		t.Errorf("picked %v, want %v", m.Picked(), want)
	}
}

func TestFieldLengthIsCapped(t *testing.T) {
	m := New()
	m.Focus()

	m, _ = typeKeys(m, "2026-08-2599")
	if m.Value() != "2026-08-25" {
		t.Errorf("value = %q, want input capped at %d runes", m.Value(), len(DateLayout))
	}
}

func TestUnfocusedFieldIgnoresKeys(t *testing.T) {
	m := New()

	m, _ = typeKeys(m, "2026-08-25")
	if m.Value() != "" {
		t.Errorf("unfocused field accepted input %q", m.Value())
	}
}
