// Package testsupport provides helpers for constructing test fixtures.
package testsupport

import (
	"path/filepath"
	"testing"

	"aoe/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp sounds directory
// per test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Sounds.Dir = filepath.Join(t.TempDir(), "sounds")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithSoundsDisabled turns the master sound switch off.
func WithSoundsDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Sounds.Enabled = false
	}
}

// WithEvent overrides the settings for one session state.
func WithEvent(state string, event config.SoundEvent) ConfigOption {
	return func(cfg *config.Config) {
		if cfg.Sounds.Events == nil {
			cfg.Sounds.Events = map[string]config.SoundEvent{}
		}
		cfg.Sounds.Events[state] = event
	}
}
