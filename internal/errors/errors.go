package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/mindcare/internal/logger"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when caller-supplied values are rejected
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientData is returned when there is not enough history to compute a result
	ErrInsufficientData = errors.New("insufficient data")
)

// NotFound returns an error wrapping ErrNotFound for the given entity kind and id
func NotFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

// InvalidInput returns an error wrapping ErrInvalidInput
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// InsufficientData returns an error wrapping ErrInsufficientData
func InsufficientData(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInsufficientData, fmt.Sprintf(format, args...))
}

func IsNotFound(err error) bool         { return errors.Is(err, ErrNotFound) }
func IsInvalidInput(err error) bool     { return errors.Is(err, ErrInvalidInput) }
func IsInsufficientData(err error) bool { return errors.Is(err, ErrInsufficientData) }

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
