// Package config loads, normalizes, and validates tonearm configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/tonearm/config.toml or a
// project-local tonearm.toml. The Config type centralizes every knob the CLI
// needs: destination directory, encoding directive defaults, naming templates,
// and log output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical codec names, and clear validation errors.
package config
