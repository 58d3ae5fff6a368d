package pool

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidConfiguration = errors.New("invalid pooling configuration")
	ErrInvalidDimensions    = errors.New("invalid pooling dimensions")
)

// ConfigError provides detailed information about a rejected argument.
// Err is one of ErrInvalidConfiguration or ErrInvalidDimensions.
type ConfigError struct {
	Field string // Argument name (e.g., "stride", "padding")
	Value any    // Offending value
	Err   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s = %v", e.Err, e.Field, e.Value)
}

// Unwrap returns the underlying sentinel.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

func invalidConfig(field string, value any) error {
	return &ConfigError{Field: field, Value: value, Err: ErrInvalidConfiguration}
}

func invalidDims(field string, value any) error {
	return &ConfigError{Field: field, Value: value, Err: ErrInvalidDimensions}
}
