package config

import "aoe/internal/sounds"

const (
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultSoundsEnabled = true
)

// Default returns a Config populated with repository defaults. Every
// session state starts enabled with its conventional sound assignment.
func Default() Config {
	events := make(map[string]SoundEvent, len(sounds.States))
	for _, state := range sounds.States {
		events[state.String()] = SoundEvent{Enabled: true}
	}
	return Config{
		Sounds: Sounds{
			Enabled: defaultSoundsEnabled,
			Events:  events,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
