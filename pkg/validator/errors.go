package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRule is matched by every rule construction failure.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrValidationFailed is matched by ValidationErrors returned from Validate.
	ErrValidationFailed = errors.New("validation failed")
)

// ConfigError reports a rule declaration that cannot be turned into a Rule.
// These are programming errors and surface when rules are built, never while
// validating data.
type ConfigError struct {
	Field  string
	Option string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("invalid rule for field %q", e.Field)
	if e.Option != "" {
		msg += fmt.Sprintf(": option %q", e.Option)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidRule) true for every ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidRule
}

func configError(field, option, reason string) *ConfigError {
	return &ConfigError{Field: field, Option: option, Reason: reason}
}
