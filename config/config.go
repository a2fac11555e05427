// SPDX-License-Identifier: MIT
// Package: qroute/config
//
// config.go - layered application settings.

// Package config loads qroute application settings from defaults, an
// optional YAML file and QROUTE_* environment variables, in that order of
// increasing priority, and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qroute/provider"
)

// Environment variables overlaid on top of the file.
const (
	EnvDevice      = "QROUTE_DEVICE"
	EnvSnapshotDir = "QROUTE_SNAPSHOT_DIR"
	EnvToken       = provider.TokenEnv
	EnvLogLevel    = "QROUTE_LOG_LEVEL"
	EnvDirected    = "QROUTE_DIRECTED"
	EnvWeightParam = "QROUTE_WEIGHT_PARAM"
)

// Defaults applied before any source.
const (
	DefaultSnapshotDir = "devices"
	DefaultLogLevel    = "info"
	DefaultLogOutput   = "stderr"
)

// ErrInvalid wraps every validation failure returned by Load and Validate.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the root of the application configuration.
type Config struct {
	// Device is the default device name for CLI commands.
	Device   string          `yaml:"device"`
	Provider provider.Config `yaml:"provider"`
	Routing  Routing         `yaml:"routing"`
	Log      Log             `yaml:"log"`

	// LoadedFrom lists the sources applied, lowest priority first.
	LoadedFrom []string `yaml:"-"`
}

// Routing holds graph construction defaults.
type Routing struct {
	// Directed builds the coupling graph without mirrored edges.
	Directed bool `yaml:"directed"`
	// WeightParam names the gate parameter used as edge weight; empty means
	// unweighted (every coupling costs 1).
	WeightParam string `yaml:"weight_param"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
	Output      string `yaml:"output" validate:"required"`
}

// Default returns the configuration used when no source overrides anything.
func Default() *Config {
	return &Config{
		Provider: provider.Config{SnapshotDir: DefaultSnapshotDir},
		Log:      Log{Level: DefaultLogLevel, Output: DefaultLogOutput},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
// A missing file at a non-empty path is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.LoadedFrom = append(cfg.LoadedFrom, "defaults")

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
		cfg.LoadedFrom = append(cfg.LoadedFrom, path)
	}

	if err := loadEnvironment(cfg); err != nil {
		return nil, err
	}
	cfg.LoadedFrom = append(cfg.LoadedFrom, "environment")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile overlays the YAML document at path onto cfg.
func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

// loadEnvironment overlays QROUTE_* variables onto cfg.
func loadEnvironment(cfg *Config) error {
	if val := os.Getenv(EnvDevice); val != "" {
		cfg.Device = val
	}
	if val := os.Getenv(EnvSnapshotDir); val != "" {
		cfg.Provider.SnapshotDir = val
	}
	if val := os.Getenv(EnvToken); val != "" {
		cfg.Provider.Token = val
	}
	if val := os.Getenv(EnvLogLevel); val != "" {
		cfg.Log.Level = strings.ToLower(val)
	}
	if val := os.Getenv(EnvWeightParam); val != "" {
		cfg.Routing.WeightParam = val
	}
	if val := os.Getenv(EnvDirected); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvDirected, val, err)
		}
		cfg.Routing.Directed = b
	}

	return nil
}

// Validate checks every validate tag, including the nested provider config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError flattens validator errors into one readable message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
