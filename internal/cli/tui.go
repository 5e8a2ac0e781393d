package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ravelnze/encore/internal/logger"
	"github.com/Ravelnze/encore/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	logger.Info("starting", "page", ctx.Page)

	p := tea.NewProgram(tui.NewModel(ctx.Page), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
