package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"aoe/internal/config"
	"aoe/internal/logging"
	"aoe/internal/sounds"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// library builds the sound library for the configured sounds directory.
func (c *commandContext) library() (*sounds.Library, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	dir, err := cfg.SoundsDir()
	if err != nil {
		return nil, err
	}
	return sounds.NewLibrary(dir), nil
}

// player builds a playback handle over the configured library.
func (c *commandContext) player() (*sounds.Player, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	lib, err := c.library()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, err
	}
	return sounds.NewPlayer(lib, cfg.SoundSettings(), logger), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
