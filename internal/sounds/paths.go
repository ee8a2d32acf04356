package sounds

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// SoundsDir returns the directory where sound files live on the current
// platform. Callers that accept a configured override should prefer it
// over this default.
func SoundsDir() (string, error) {
	return soundsDirFor(runtime.GOOS)
}

func soundsDirFor(goos string) (string, error) {
	switch goos {
	case "linux":
		if base, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && strings.TrimSpace(base) != "" {
			return filepath.Join(base, "agent-of-empires", "sounds"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, ".config", "agent-of-empires", "sounds"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, ".agent-of-empires", "sounds"), nil
	}
	// No install location is defined for other platforms. Fail loudly
	// rather than guessing; sounds.dir in the config file overrides this.
	return "", fmt.Errorf("no sounds directory defined for %s; set sounds.dir in the config file", goos)
}
