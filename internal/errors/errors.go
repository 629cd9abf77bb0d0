package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/adhan/internal/logger"
)

var (
	// ErrNetwork is matched by every NetworkError
	ErrNetwork = errors.New("network failure")
	// ErrFormat is matched by every FormatError
	ErrFormat = errors.New("invalid time format")
)

// NetworkError reports a failed backend fetch: transport error, non-success
// status, or an undecodable body.
type NetworkError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// FormatError reports a time string without a usable HH:MM component.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Input == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

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
