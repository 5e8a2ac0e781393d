package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Ravelnze/encore/internal/cli"
	"github.com/Ravelnze/encore/internal/errors"
	"github.com/Ravelnze/encore/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging."`
	LogFile string `help:"Log file path." type:"path" default:"~/.cache/encore/encore.log"`
	Page    string `help:"Location hash to open with." default:"#"`

	Tui    cli.TuiCmd    `cmd:"" help:"Browse the site." default:"1"`
	Routes cli.RoutesCmd `cmd:"" help:"Print the route table, or decode hashes."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("encore"),
		kong.Description("Wedding music & DJ site, in the terminal"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	// The TUI owns the terminal, so logs go to a file. A broken log path
	// should not keep the site from opening.
	if err := logger.Init(logger.Config{Debug: CLI.Debug, File: CLI.LogFile}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}

	appCtx := &cli.Context{Page: CLI.Page}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
