package config

import (
	"fmt"

	"aoe/internal/sounds"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSounds(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSounds() error {
	for name := range c.Sounds.Events {
		if _, err := sounds.ParseState(name); err != nil {
			return fmt.Errorf("sounds.events: %w", err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
