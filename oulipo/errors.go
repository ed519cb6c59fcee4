package oulipo

import (
	"errors"
	"fmt"
)

// ConfigError reports malformed or missing constraint configuration, detected
// either at constraint construction or at registry dispatch. It is the only
// error class the constraint engine produces; rule violations are data inside
// ConstraintResult, never errors.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return "invalid constraint configuration: " + e.msg
}

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, args ...any) error {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
