package config

import "fmt"

// ConfigError represents a configuration loading or validation error.
type ConfigError struct {
	Field string // Field that failed validation, when known
	Err   error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
