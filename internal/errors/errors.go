package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/calmher/internal/logger"
)

var (
	// ErrInvalidInput matches any InvalidInputError
	ErrInvalidInput = stderrors.New("invalid input")
	// ErrInvalidRange matches any InvalidRangeError
	ErrInvalidRange = stderrors.New("invalid date range")
	// ErrMalformedEvent matches any MalformedEventError
	ErrMalformedEvent = stderrors.New("malformed event")
)

// InvalidInputError reports a request value outside its accepted domain,
// such as a burnout score outside [1, 5].
type InvalidInputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s (got: %v): %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// InvalidRangeError reports a date range whose end precedes its start.
type InvalidRangeError struct {
	Start string
	End   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("end date %s is before start date %s", e.End, e.Start)
}

func (e *InvalidRangeError) Is(target error) bool { return target == ErrInvalidRange }

// MalformedEventError reports a single calendar event that could not be parsed.
// It is always recovered by skipping the event.
type MalformedEventError struct {
	Index  int
	Title  string
	Reason string
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed event #%d %q: %s", e.Index, e.Title, e.Reason)
}

func (e *MalformedEventError) Is(target error) bool { return target == ErrMalformedEvent }

// IsClientError reports whether err was caused by bad caller input.
func IsClientError(err error) bool {
	return stderrors.Is(err, ErrInvalidInput) || stderrors.Is(err, ErrInvalidRange)
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
