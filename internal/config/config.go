// Package config loads tonal's settings from a TOML file and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/tonal/internal/colour"
)

const (
	// AppName names the config and data directories.
	AppName = "tonal"

	// ConfigFile is the config file name inside the config directory.
	ConfigFile = "config.toml"
)

// Store kinds.
const (
	StoreFile = "file"
	StoreSQL  = "sql"
)

// Environment variables that override file settings.
const (
	EnvTextOnLight = "TONAL_TEXT_ON_LIGHT"
	EnvTextOnDark  = "TONAL_TEXT_ON_DARK"
	EnvStore       = "TONAL_STORE"
	EnvStorePath   = "TONAL_STORE_PATH"
	EnvLogLevel    = "TONAL_LOG_LEVEL"
)

// StoreConfig selects where band targets are persisted.
type StoreConfig struct {
	// Kind is "file" (JSON) or "sql" (libSQL database).
	Kind string `toml:"kind"`
	// Path is the file or database location. Empty means the default
	// location under the user config directory.
	Path string `toml:"path"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Config is the complete application configuration.
type Config struct {
	Contrast colour.ContrastConfig `toml:"contrast"`
	Ribbon   colour.RibbonConfig   `toml:"ribbon"`
	Defaults colour.BandDefaults   `toml:"defaults"`
	Gaps     colour.GapConfig      `toml:"gaps"`
	Seek     colour.SeekConfig     `toml:"seek"`
	Solver   colour.SolverOptions  `toml:"solver"`
	Text     colour.TextConfig     `toml:"text"`
	Store    StoreConfig           `toml:"store"`
	Log      LogConfig             `toml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	s := colour.DefaultShadeConfig()
	return Config{
		Contrast: s.Contrast,
		Ribbon:   s.Ribbon,
		Defaults: s.Defaults,
		Gaps:     s.Gaps,
		Seek:     s.Seek,
		Solver:   s.Solver,
		Text:     s.Text,
		Store:    StoreConfig{Kind: StoreFile},
		Log:      LogConfig{Level: "info"},
	}
}

// Shades returns the generation settings.
func (c Config) Shades() colour.ShadeConfig {
	return colour.ShadeConfig{
		Contrast: c.Contrast,
		Ribbon:   c.Ribbon,
		Defaults: c.Defaults,
		Gaps:     c.Gaps,
		Seek:     c.Seek,
		Solver:   c.Solver,
		Text:     c.Text,
	}
}

// DefaultPath returns the config file location, honouring XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, AppName, ConfigFile), nil
}

// Load reads the config file at path over the defaults. An empty path means
// DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path) // #nosec G304 - Config path chosen by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg. Keys absent from data keep their
// current values; unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return errors.New(strict.String())
		}
		return err
	}
	return nil
}

// Encode renders the configuration as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// WithEnv applies TONAL_* overrides read through getenv.
func (c Config) WithEnv(getenv func(string) string) Config {
	if v := strings.TrimSpace(getenv(EnvTextOnLight)); v != "" {
		c.Text.OnLight = v
	}
	if v := strings.TrimSpace(getenv(EnvTextOnDark)); v != "" {
		c.Text.OnDark = v
	}
	if v := strings.TrimSpace(getenv(EnvStore)); v != "" {
		c.Store.Kind = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvStorePath)); v != "" {
		c.Store.Path = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	return c
}

// LogLevel returns the configured hclog level.
func (c Config) LogLevel() hclog.Level {
	return hclog.LevelFromString(c.Log.Level)
}

// StorePath returns the target store location, falling back to a file
// named for the store kind next to the config file.
func (c Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}

	name := "targets.json"
	if c.Store.Kind == StoreSQL {
		name = "targets.db"
	}
	return filepath.Join(dir, AppName, name), nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	if err := c.Shades().Validate(); err != nil {
		errs = append(errs, err)
	}

	switch c.Store.Kind {
	case StoreFile, StoreSQL:
	default:
		errs = append(errs, fmt.Errorf("store: unknown kind %q (expected %s or %s)", c.Store.Kind, StoreFile, StoreSQL))
	}

	if c.LogLevel() == hclog.NoLevel {
		errs = append(errs, fmt.Errorf("log: unknown level %q", c.Log.Level))
	}

	return errors.Join(errs...)
}
