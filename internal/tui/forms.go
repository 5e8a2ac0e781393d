package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/Ravelnze/encore/internal/tui/components/datepicker"
)

// NewEnquiryForm creates the booking dialog's form.
func NewEnquiryForm(fm *EnquiryForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				CharLimit(64).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Email").
				Value(&fm.Email).
				CharLimit(64).
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return fmt.Errorf("email must contain @")
					}
					return nil
				}),
			huh.NewInput().
				Title("Wedding date (YYYY-MM-DD)").
				Description("Leave empty if you haven't set one yet").
				Value(&fm.Date).
				CharLimit(len(datepicker.DateLayout)).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := time.Parse(datepicker.DateLayout, s)
					if err != nil {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewText().
				Title("Message (optional)").
				CharLimit(400).
				Value(&fm.Message),
		),
	).WithTheme(huh.ThemeDracula())
}
