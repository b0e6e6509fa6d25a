// Package config resolves dsatrack settings. Values are layered in this
// order, later layers winning: defaults, YAML file, .env file, DSATRACK_*
// environment variables. Command-line flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/dsatrack/internal/catalog"
)

// Config holds all application configuration.
type Config struct {
	// DBPath is the SQLite file. Empty means the XDG default.
	DBPath string `yaml:"db"`

	// CatalogSource is "builtin", a file path or an http(s) URL.
	CatalogSource string `yaml:"catalog" validate:"required"`

	// Timezone decides which calendar day a visit counts for.
	// Default: "UTC".
	Timezone string `yaml:"timezone" validate:"required,timezone"`

	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
	File   string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CatalogSource: catalog.BuiltinSource,
		Timezone:      "UTC",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/dsatrack/config.yaml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "dsatrack", "config.yaml"), nil
}

// Load builds a Config. An explicit path must exist; with an empty path
// the default location is read only if present. A .env file in the
// working directory is loaded into the environment without overriding
// variables that are already set.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.DBPath = envStr("DSATRACK_DB", c.DBPath)
	c.CatalogSource = envStr("DSATRACK_CATALOG", c.CatalogSource)
	c.Timezone = envStr("DSATRACK_TIMEZONE", c.Timezone)
	c.Log.Level = strings.ToLower(envStr("DSATRACK_LOG_LEVEL", c.Log.Level))
	c.Log.Format = strings.ToLower(envStr("DSATRACK_LOG_FORMAT", c.Log.Format))
	c.Log.File = envStr("DSATRACK_LOG_FILE", c.Log.File)
}

var validate = validator.New()

// Validate checks field values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s: %q fails %q", fe.Namespace(), fe.Value(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Location returns the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
