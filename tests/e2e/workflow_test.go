package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// binPath resolves the built encore binary. Allow overriding the bin dir via
// env var, default to ../../bin (relative to tests/e2e). Tests are skipped
// when the binary has not been built.
func binPath(t *testing.T) (string, []string) {
	t.Helper()

	binDir := os.Getenv("ENCORE_BIN_DIR")
	if binDir == "" {
		binDir = filepath.Join("..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)

	cliPath := filepath.Join(binDir, "encore")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("encore binary not found at %s, build it first", cliPath)
	}

	// Isolate HOME so the default log path lands in a temp dir.
	tempDir := t.TempDir()
	var cleanEnv []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "HOME=") || strings.HasPrefix(e, "XDG_CACHE_HOME=") {
			continue
		}
		cleanEnv = append(cleanEnv, e)
	}
	cleanEnv = append(cleanEnv,
		fmt.Sprintf("HOME=%s", tempDir),
		fmt.Sprintf("XDG_CACHE_HOME=%s", filepath.Join(tempDir, ".cache")),
	)

	return cliPath, cleanEnv
}

func runCmd(t *testing.T, path string, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command %s %v failed: %v\nOutput: %s", path, args, err, out)
	}
	return string(out)
}

func TestVersionFlag(t *testing.T) {
	cliPath, env := binPath(t)

	out := runCmd(t, cliPath, env, "--version")
	if !strings.Contains(out, "v") {
		t.Errorf("--version printed %q", out)
	}
}

func TestRouteTableOutput(t *testing.T) {
	cliPath, env := binPath(t)

	out := runCmd(t, cliPath, env, "routes")

	for _, want := range []string{"#", "#reception", "#music", "#contact", "Home", "Reception", "Music", "Contact"} {
		if !strings.Contains(out, want) {
			t.Errorf("routes output missing %q:\n%s", want, out)
		}
	}
}

func TestRouteDecoding(t *testing.T) {
	cliPath, env := binPath(t)

	out := runCmd(t, cliPath, env, "routes", "#music", "#pricing")

	if !strings.Contains(out, "Music") {
		t.Errorf("decoding #music missing from output:\n%s", out)
	}
	if !strings.Contains(out, "Not Found") {
		t.Errorf("decoding #pricing should report Not Found:\n%s", out)
	}
}
