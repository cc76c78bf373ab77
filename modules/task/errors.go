package task

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTaskNotFound is returned when the requested task does not exist.
var ErrTaskNotFound = errors.New("task not found")

// validationPrefix is kept stable because typed errors do not survive the
// service-container boundary; callers on the far side fall back to matching
// the error text.
const validationPrefix = "validation failed"

// ValidationError reports an invalid or missing field value on create or
// update. It always names the violated field so the client can render a
// field-level message instead of a generic failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", validationPrefix, e.Field, e.Message)
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound reports whether err represents a missing task. Errors returned
// across the service container arrive as plain strings, so the check falls
// back to the error text.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTaskNotFound) {
		return true
	}
	return strings.Contains(err.Error(), ErrTaskNotFound.Error())
}

// IsValidation reports whether err represents a validation failure.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return true
	}
	return strings.Contains(err.Error(), validationPrefix)
}

// ValidationField extracts the violated field from a validation error,
// including errors that crossed the service boundary as strings. Returns ""
// when err is not a validation error.
func ValidationField(err error) string {
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Field
	}
	msg := err.Error()
	idx := strings.Index(msg, validationPrefix+": ")
	if idx < 0 {
		return ""
	}
	rest := msg[idx+len(validationPrefix)+2:]
	if end := strings.Index(rest, ":"); end > 0 {
		return rest[:end]
	}
	return ""
}
