// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
)

// ValidationError indicates a definition, manifest or filter failed validation.
type ValidationError struct {
	Field   string   // What failed validation
	Message string   // Error message
	Details []string // One entry per failing location
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s (%d issues)", e.Field, e.Message, len(e.Details))
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// BuildError indicates generating one manifest entry failed.
type BuildError struct {
	Cause   error
	Kind    string
	Name    string
	Message string
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("build failed for %s %s: %s: %v", e.Kind, e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("build failed for %s %s: %s", e.Kind, e.Name, e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// NewBuildError creates a new build error.
func NewBuildError(kind, name, message string, cause error) *BuildError {
	return &BuildError{
		Kind:    kind,
		Name:    name,
		Message: message,
		Cause:   cause,
	}
}

// ConfigurationError indicates system config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}
