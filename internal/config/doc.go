// Package config loads, normalizes, and validates aoe configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads the TOML config file. Always obtain settings
// through this package so downstream code receives sanitized paths,
// canonical log formats, and clear validation errors.
package config
