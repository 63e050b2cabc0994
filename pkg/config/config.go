package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Settings is the user-facing configuration surface.
type Settings struct {
	Input struct {
		Structure string `koanf:"structure" toml:"structure"`
	} `koanf:"input" toml:"input"`
	Plan struct {
		Resolve         []string `koanf:"resolve" toml:"resolve"`
		Strict          []string `koanf:"strict" toml:"strict"`
		AllowCaseRename bool     `koanf:"allow_case_rename" toml:"allow_case_rename"`
		CaseMode        string   `koanf:"case_mode" toml:"case_mode"`
	} `koanf:"plan" toml:"plan"`
	Sequence struct {
		Start int `koanf:"start" toml:"start"`
		Step  int `koanf:"step" toml:"step"`
	} `koanf:"sequence" toml:"sequence"`
	Output struct {
		Format         string `koanf:"format" toml:"format"`
		VerboseRecords bool   `koanf:"verbose_records" toml:"verbose_records"`
	} `koanf:"output" toml:"output"`
}

// rawBytesProvider implements a koanf provider for embedded bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// DefaultPath returns the default user config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "renamer", "renamer.toml")
}

// Load layers built-in defaults, the user config file, and RENAMER_*
// environment variables, in that order. An empty path uses the default
// location; a missing file is not an error.
func Load(path string) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	// 2. User config file, if present
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Environment overrides: RENAMER_PLAN_STRICT=all etc.
	if err := k.Load(env.Provider("RENAMER_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "RENAMER_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	return &settings, nil
}
