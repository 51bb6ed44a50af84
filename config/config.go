// Package config loads and validates checker configuration. The one
// recognized option is verbose-diagnostics, which makes checkers log
// (and consume) the failure cause on every failed check instead of
// reacting silently.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Toggle is a boolean option that also accepts the on/off spelling
// used in configuration files.
type Toggle bool

// UnmarshalText parses on/off, true/false, yes/no (any case).
func (t *Toggle) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "on", "true", "yes":
		*t = true
	case "off", "false", "no":
		*t = false
	default:
		return &ConfigError{Err: fmt.Errorf("unrecognized toggle value %q", text)}
	}
	return nil
}

// MarshalText renders the canonical on/off spelling.
func (t Toggle) MarshalText() ([]byte, error) {
	if t {
		return []byte("on"), nil
	}
	return []byte("off"), nil
}

// UnmarshalYAML accepts both the bare YAML booleans and the on/off
// string spelling.
func (t *Toggle) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err == nil {
		*t = Toggle(b)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return &ConfigError{Err: fmt.Errorf("toggle must be a boolean or on/off, got %s", value.Tag)}
	}
	return t.UnmarshalText([]byte(s))
}

// Options is the checker configuration surface.
type Options struct {
	// VerboseDiagnostics enables diagnostic logging. Off by default.
	VerboseDiagnostics Toggle `yaml:"verbose-diagnostics" json:"verbose-diagnostics,omitempty" env:"CHECKKIT_VERBOSE_DIAGNOSTICS"`
}

// Verbose reports whether diagnostic logging is enabled.
func (o Options) Verbose() bool {
	return bool(o.VerboseDiagnostics)
}

// Load reads YAML configuration from r, validates it against the
// options schema, and decodes it.
func Load(r io.Reader) (Options, error) {
	var opts Options

	data, err := io.ReadAll(r)
	if err != nil {
		return opts, &ConfigError{Err: fmt.Errorf("read config: %w", err)}
	}

	// Validate the raw document first so unknown or mistyped keys are
	// rejected before decoding.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return opts, &ConfigError{Err: fmt.Errorf("parse config: %w", err)}
	}
	if doc != nil {
		if err := validateDocument(doc); err != nil {
			return opts, err
		}
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, &ConfigError{Err: fmt.Errorf("decode config: %w", err)}
	}
	return opts, nil
}

// LoadFile reads YAML configuration from the file at path.
func LoadFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, &ConfigError{Err: fmt.Errorf("open config: %w", err)}
	}
	defer f.Close()
	return Load(f)
}

// FromEnv loads configuration from environment variables
// (CHECKKIT_VERBOSE_DIAGNOSTICS).
func FromEnv() (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return opts, &ConfigError{Err: fmt.Errorf("parse env: %w", err)}
	}
	return opts, nil
}
