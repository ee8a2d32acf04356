package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSoundsInstall(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sounds", "install"}, env.configPath)
	if err != nil {
		t.Fatalf("sounds install: %v", err)
	}
	requireContains(t, out, "Installed bundled CC0 sounds to:")
	requireContains(t, out, env.soundsDir)
	requireContains(t, out, "SubspaceAudio")
	requireContains(t, out, "opengameart.org")

	entries, err := os.ReadDir(env.soundsDir)
	if err != nil {
		t.Fatal(err)
	}
	var oggs int
	for _, de := range entries {
		if filepath.Ext(de.Name()) == ".ogg" {
			oggs++
		}
	}
	if oggs != 10 {
		t.Fatalf("expected 10 installed .ogg files, found %d", oggs)
	}
}

func TestSoundsInstallIdempotent(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"sounds", "install"}, env.configPath); err != nil {
		t.Fatal(err)
	}
	out, _, err := runCLI(t, []string{"sounds", "install"}, env.configPath)
	if err != nil {
		t.Fatal(err)
	}
	requireContains(t, out, "Already up to date (10)")
}

func TestSoundsList(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sounds", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("sounds list: %v", err)
	}
	requireContains(t, out, "Total: 10 sounds")
	requireContains(t, out, "Location: "+env.soundsDir)
	requireContains(t, out, "session_start")
}

func TestSoundsListAlias(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sounds", "ls"}, env.configPath)
	if err != nil {
		t.Fatalf("sounds ls: %v", err)
	}
	requireContains(t, out, "Total: 10 sounds")
}

func TestSoundsListJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sounds", "list", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("sounds list --json: %v", err)
	}

	var rows []soundListEntry
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(rows) != 10 {
		t.Fatalf("got %d rows, want 10", len(rows))
	}

	states := make(map[string]bool)
	for _, row := range rows {
		if row.State != "" {
			states[row.State] = true
		}
	}
	for _, want := range []string{"Start", "Running", "Waiting", "Idle", "Error"} {
		if !states[want] {
			t.Fatalf("state %s missing from listing: %v", want, states)
		}
	}
}

func TestSoundsListShowsUserOverride(t *testing.T) {
	env := setupCLITestEnv(t)

	if err := os.MkdirAll(env.soundsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	custom := filepath.Join(env.soundsDir, "session_start.wav")
	if err := os.WriteFile(custom, []byte("user audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, []string{"sounds", "list", "--json"}, env.configPath)
	if err != nil {
		t.Fatal(err)
	}

	var rows []soundListEntry
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatal(err)
	}
	for _, row := range rows {
		if row.Name == "session_start" {
			if row.Source != "user (overrides bundled)" {
				t.Fatalf("source = %q", row.Source)
			}
			if row.File != "session_start.wav" {
				t.Fatalf("file = %q", row.File)
			}
			return
		}
	}
	t.Fatal("session_start missing from listing")
}

func TestSoundsTest(t *testing.T) {
	requireFakePlayer(t)
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sounds", "test", "chime"}, env.configPath)
	if err != nil {
		t.Fatalf("sounds test: %v", err)
	}
	requireContains(t, out, "Played \"chime\"")
}

func TestSoundsTestUnknown(t *testing.T) {
	requireFakePlayer(t)
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sounds", "test", "kazoo"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for unknown sound")
	}
	requireContains(t, out, "Available sounds:")
}
