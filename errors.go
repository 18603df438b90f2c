// Package gemmcheck structured error types for precondition and resource failures
package gemmcheck

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Configuration precondition violations
	ErrTypeConfig ErrorType = iota
	// Buffer allocation errors
	ErrTypeMemory
)

// HarnessError represents a structured error with context.
// Assertion failures are not errors: they flow through a Reporter.
type HarnessError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *HarnessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gemmcheck %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("gemmcheck %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *HarnessError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeConfig:
		return "Config"
	case ErrTypeMemory:
		return "Memory"
	default:
		return "Unknown"
	}
}

// NewConfigError creates a configuration precondition error
func NewConfigError(op string, message string) error {
	return &HarnessError{
		Type:    ErrTypeConfig,
		Op:      op,
		Message: message,
	}
}

// NewMemoryError creates a buffer allocation error
func NewMemoryError(op string, message string, err error) error {
	return &HarnessError{
		Type:    ErrTypeMemory,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsConfigError checks if an error is a configuration precondition error
func IsConfigError(err error) bool {
	if e, ok := err.(*HarnessError); ok {
		return e.Type == ErrTypeConfig
	}
	return false
}

// IsMemoryError checks if an error is a buffer allocation error
func IsMemoryError(err error) bool {
	if e, ok := err.(*HarnessError); ok {
		return e.Type == ErrTypeMemory
	}
	return false
}
