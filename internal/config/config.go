package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"aoe/internal/sounds"
)

//go:embed sample_config.toml
var sampleConfig string

// Sounds contains configuration for session sound effects.
type Sounds struct {
	Enabled bool `toml:"enabled"`
	// Dir overrides the platform sounds directory.
	Dir string `toml:"dir"`
	// Player overrides the detected audio command.
	Player string `toml:"player"`
	// Events configures playback per session state, keyed by state name.
	Events map[string]SoundEvent `toml:"events"`
}

// SoundEvent configures playback for one session state.
type SoundEvent struct {
	Enabled bool `toml:"enabled"`
	// File reassigns the state to another sound name (file stem).
	File string `toml:"file"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for aoe.
type Config struct {
	Sounds  Sounds  `toml:"sounds"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/agent-of-empires/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("aoe.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Sounds.Dir) != "" {
		expanded, err := expandPath(c.Sounds.Dir)
		if err != nil {
			return fmt.Errorf("sounds.dir: %w", err)
		}
		c.Sounds.Dir = expanded
	} else {
		c.Sounds.Dir = ""
	}
	c.Sounds.Player = strings.TrimSpace(c.Sounds.Player)

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// SoundsDir returns the directory holding sound files, honoring the
// configured override before the platform default.
func (c *Config) SoundsDir() (string, error) {
	if strings.TrimSpace(c.Sounds.Dir) != "" {
		return c.Sounds.Dir, nil
	}
	return sounds.SoundsDir()
}

// SoundSettings converts the TOML sound section into player settings.
func (c *Config) SoundSettings() sounds.Settings {
	events := make(map[sounds.State]sounds.EventSettings, len(c.Sounds.Events))
	for name, event := range c.Sounds.Events {
		state, err := sounds.ParseState(name)
		if err != nil {
			// Validate rejects unknown states; skip defensively here.
			continue
		}
		events[state] = sounds.EventSettings{
			Enabled: event.Enabled,
			File:    strings.TrimSpace(event.File),
		}
	}
	return sounds.Settings{
		Enabled: c.Sounds.Enabled,
		Command: c.Sounds.Player,
		Events:  events,
	}
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
