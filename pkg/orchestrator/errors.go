package orchestrator

import (
	"errors"
	"fmt"
)

// ConfigurationError indicates missing operator-level configuration, e.g. an
// absent LLM API key. Missions fail fast at start with a user-visible message.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Detail
}

// IsConfigurationError checks if an error is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var confErr *ConfigurationError
	return errors.As(err, &confErr)
}

// DispatchError indicates the authoritative control plane could not accept the
// mission (database unavailable, transaction failure).
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("failed to dispatch mission: %v", e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// IsDispatchError checks if an error is a DispatchError.
func IsDispatchError(err error) bool {
	var dispErr *DispatchError
	return errors.As(err, &dispErr)
}
