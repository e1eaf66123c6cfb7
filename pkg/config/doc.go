// Package config handles configuration management for the keepsake CLI.
// It layers, lowest precedence first: embedded defaults, an optional TOML or
// YAML settings file, KEEPSAKE_* environment variables, and command-line flags.
package config
