// Package config loads, validates, and normalizes chirp's TOML
// configuration.
//
// Load resolves the config path (explicit flag, ~/.config/chirp/config.toml,
// or ./chirp.toml), overlays the file onto repository defaults, expands all
// paths, and validates the result. Missing files are not an error: the
// defaults alone form a runnable configuration.
package config
