// Package config loads tutorcore settings from defaults, an optional YAML
// file and TUTORCORE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/abhisek/tutorcore/internal/llm"
	"github.com/abhisek/tutorcore/internal/summary"
	"github.com/abhisek/tutorcore/internal/tutor"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "tutorcore.yaml"

// EnvPrefix prefixes every environment override. Nesting uses "__", so
// TUTORCORE_LLM__PROVIDER sets llm.provider.
const EnvPrefix = "TUTORCORE_"

type LogConfig struct {
	// Mode is "dev" (console) or "prod" (JSON).
	Mode  string `koanf:"mode" validate:"oneof=dev prod"`
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	// HashSalt is mixed into hashed session ids in log output.
	HashSalt string `koanf:"hash_salt"`
}

type StoreConfig struct {
	// Path is the SQLite event log. Empty uses store.DefaultDBPath.
	Path string `koanf:"path"`
	// Disabled turns off event recording entirely.
	Disabled bool `koanf:"disabled"`
}

type TracingConfig struct {
	Enabled     bool    `koanf:"enabled"`
	ServiceName string  `koanf:"service_name" validate:"required"`
	SampleRatio float64 `koanf:"sample_ratio" validate:"gte=0,lte=1"`
}

// Config is the full application configuration.
type Config struct {
	LLM     llm.Config     `koanf:"llm"`
	Log     LogConfig      `koanf:"log"`
	Store   StoreConfig    `koanf:"store"`
	Tracing TracingConfig  `koanf:"tracing"`
	Tutor   tutor.Config   `koanf:"tutor"`
	Summary summary.Config `koanf:"summary"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LLM: llm.DefaultConfig(),
		Log: LogConfig{
			Mode:  "dev",
			Level: "info",
		},
		Tracing: TracingConfig{
			ServiceName: "tutorcore",
			SampleRatio: 1,
		},
		Tutor:   tutor.DefaultConfig(),
		Summary: summary.DefaultConfig(),
	}
}

// Load reads configuration. A missing file at path is not an error; an
// empty path means DefaultPath. The provider is discovered from the
// standard API key variables when none is configured.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config file %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LLM.Discover()

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps TUTORCORE_LLM__OPENAI__API_KEY to llm.openai.api_key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

var validate = validator.New()

// Validate checks field constraints and reports every failing field.
// Provider credentials are checked separately by llm.Config.Validate,
// since commands that never call the model do not need them.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("config validation failed: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:")
	for _, e := range errs {
		fmt.Fprintf(&sb, "\n  %s: failed '%s' (value: %v)", e.Namespace(), e.Tag(), e.Value())
	}
	return errors.New(sb.String())
}
