// Package config loads user preferences for renamer, layering built-in
// defaults, an optional TOML file under the XDG config directory, and
// RENAMER_* environment variables.
package config
