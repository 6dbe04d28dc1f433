package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/types"
)

// Config is the resolved application configuration.
type Config struct {
	Pipeline PipelineConfig `koanf:"pipeline" toml:"pipeline"`
	Storage  StorageConfig  `koanf:"storage" toml:"storage"`
	Log      LogConfig      `koanf:"log" toml:"log"`
	Output   OutputConfig   `koanf:"output" toml:"output"`
}

// PipelineConfig selects pipeline defaults.
type PipelineConfig struct {
	DefaultVersion string `koanf:"default_version" toml:"default_version"`
}

// StorageConfig locates the order database.
type StorageConfig struct {
	Path string `koanf:"path" toml:"path"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	Color string `koanf:"color" toml:"color"`
}

// UserConfigPath returns the expected user config file location.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "pixelpipe", "pixelpipe.toml")
}

// Load resolves the configuration: embedded defaults, then the user file if
// present, then PIXELPIPE_* environment variables (PIXELPIPE_LOG_VERBOSITY
// maps to log.verbosity).
func Load() (*Config, error) {
	return LoadFrom(UserConfigPath())
}

// LoadFrom resolves the configuration using an explicit user file path.
func LoadFrom(userPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", userPath)
		}
	}

	if err := k.Load(env.Provider("PIXELPIPE_", ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, "PIXELPIPE_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, ok := types.ParseVersion(c.Pipeline.DefaultVersion); !ok {
		return errors.Newf(errors.ErrConfigValid,
			"pipeline.default_version %q is not a known version", c.Pipeline.DefaultVersion)
	}
	if v, ok := types.ParseVersion(c.Pipeline.DefaultVersion); ok && !v.IsBuiltin() {
		return errors.New(errors.ErrConfigValid, "pipeline.default_version must be a built-in table")
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.Newf(errors.ErrConfigValid, "output.color %q must be auto, always or never", c.Output.Color)
	}
	return nil
}

// DefaultVersion returns the parsed default order version.
func (c *Config) DefaultVersion() types.Version {
	v, _ := types.ParseVersion(c.Pipeline.DefaultVersion)
	return v
}

// Generate marshals the effective configuration back to TOML.
func (c *Config) Generate() ([]byte, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal config")
	}
	return data, nil
}
