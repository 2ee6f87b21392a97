// Package errors provides standardized error handling patterns for the
// flext core. It includes error classification, standard error variables,
// and helper functions for consistent error wrapping across the system.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorInvalid represents errors due to invalid input or registration
	ErrorInvalid ErrorClass = iota
	// ErrorState represents errors due to calls in the wrong lifecycle state
	ErrorState
	// ErrorFatal represents unrecoverable errors that should stop the
	// operation in progress (resource exhaustion)
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorInvalid:
		return "invalid"
	case ErrorState:
		return "state"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Registry lifecycle errors
	ErrAlreadySetup = errors.New("inlets and outlets already set up")
	ErrNotSetup     = errors.New("inlets and outlets not set up")
	ErrFrozen       = errors.New("table frozen after setup")

	// Declaration and registration errors
	ErrInvalidXlet      = errors.New("invalid xlet declaration")
	ErrInvalidSignature = errors.New("invalid method signature")
	ErrDuplicateClass   = errors.New("class already registered")
	ErrUnknownClass     = errors.New("unknown class")

	// Dispatch and emission errors
	ErrInvalidOutlet = errors.New("invalid outlet index")
	ErrInvalidInlet  = errors.New("invalid inlet index")
	ErrUnhandled     = errors.New("message not handled")

	// Binding errors
	ErrAlreadyBound = errors.New("symbol already bound")
	ErrNotBound     = errors.New("symbol not bound to this instance")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")

	// Resource errors
	ErrResourceExhausted = errors.New("resource exhausted")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsInvalid checks if an error is due to invalid input or registration
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrInvalidXlet) ||
		errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrInvalidOutlet) ||
		errors.Is(err, ErrInvalidInlet) ||
		errors.Is(err, ErrInvalidConfig)
}

// IsState checks if an error is due to a call in the wrong lifecycle state
func IsState(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorState
	}

	return errors.Is(err, ErrAlreadySetup) ||
		errors.Is(err, ErrNotSetup) ||
		errors.Is(err, ErrFrozen)
}

// IsFatal checks if an error is fatal to the operation in progress
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	return errors.Is(err, ErrResourceExhausted)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if IsState(err) {
		return ErrorState
	}
	if IsFatal(err) {
		return ErrorFatal
	}
	return ErrorInvalid
}

// newClassified creates a new classified error.
// This is an internal helper - use WrapInvalid(), WrapState() or WrapFatal() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapState wraps an error as a lifecycle-state error with context
func WrapState(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorState, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}
