package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// cliTestEnv holds the paths backing one CLI test invocation.
type cliTestEnv struct {
	configPath string
	soundsDir  string
}

// setupCLITestEnv writes a config file pointing at a temp sounds directory.
// The player is pinned to 'true' so playback commands succeed without audio
// hardware; tests needing it call requireFakePlayer first.
func setupCLITestEnv(t *testing.T) cliTestEnv {
	t.Helper()

	base := t.TempDir()
	soundsDir := filepath.Join(base, "sounds")
	configPath := filepath.Join(base, "config.toml")

	content := fmt.Sprintf("[sounds]\nenabled = true\ndir = %q\nplayer = \"true\"\n", soundsDir)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return cliTestEnv{configPath: configPath, soundsDir: soundsDir}
}

func requireFakePlayer(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("no 'true' binary available")
	}
}

// runCLI executes the root command with the given args plus --config.
func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append(args, "--config", configPath)
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output missing %q:\n%s", needle, haystack)
	}
}
