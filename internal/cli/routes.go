package cli

import (
	"fmt"

	"github.com/Ravelnze/encore/internal/router"
)

// RoutesCmd prints the route table, or decodes the hashes given as
// arguments.
type RoutesCmd struct {
	Hashes []string `arg:"" optional:"" help:"Location hashes to decode."`
}

func (c *RoutesCmd) Run(ctx *Context) error {
	if len(c.Hashes) > 0 {
		for _, h := range c.Hashes {
			fmt.Printf("%-20s -> %s\n", h, router.Decode(h))
		}
		return nil
	}
	for _, line := range RouteTable() {
		fmt.Println(line)
	}
	return nil
}

// RouteTable renders one line per navigable page.
func RouteTable() []string {
	var lines []string
	for _, p := range router.Pages() {
		lines = append(lines, fmt.Sprintf("%-12s %s", router.Fragment(p), router.Title(p)))
	}
	return lines
}
