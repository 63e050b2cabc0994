package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/renamer/pkg/errors"
)

// Defaults returns the built-in settings without any file or
// environment layering.
func Defaults() (*Settings, error) {
	var settings Settings
	if err := gotoml.Unmarshal(defaultConfig, &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode built-in defaults")
	}
	return &settings, nil
}

// GenerateContent produces the content for a fresh user config file:
// the built-in defaults with every value line commented out, so the
// file documents the defaults without pinning them.
func GenerateContent() string {
	lines := strings.Split(string(defaultConfig), "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
