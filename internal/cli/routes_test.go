package cli

import (
	"strings"
	"testing"

	"github.com/Ravelnze/encore/internal/router"
)

func TestRouteTable(t *testing.T) {
	lines := RouteTable()
	if len(lines) != len(router.Pages()) {
		t.Fatalf("route table has %d lines, want %d", len(lines), len(router.Pages()))
	}

	for i, p := range router.Pages() {
		if !strings.Contains(lines[i], router.Fragment(p)) {
			t.Errorf("line %d missing fragment %q: %q", i, router.Fragment(p), lines[i])
		}
		if !strings.Contains(lines[i], router.Title(p)) {
			t.Errorf("line %d missing title %q: %q", i, router.Title(p), lines[i])
		}
	}
}

func TestRoutesCmdRun(t *testing.T) {
	ctx := &Context{Page: "#"}

	cmd := &RoutesCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("routes failed: %v", err)
	}

	cmd = &RoutesCmd{Hashes: []string{"#music", "#nope"}}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("routes with hashes failed: %v", err)
	}
}
