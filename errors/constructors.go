package errors

import "fmt"

// New creates a ContextualError without a cause.
//
// Example:
//
//	if len(sinks) == 0 {
//	    return errors.New("No sinks found!")
//	}
func New(message string) *ContextualError {
	return &ContextualError{message: message}
}

// Newf creates a ContextualError without a cause from a format string.
func Newf(format string, args ...any) *ContextualError {
	return &ContextualError{message: fmt.Sprintf(format, args...)}
}

// WithCause creates a ContextualError owning cause.
// Unlike Wrap it always returns a new link, even when cause is nil.
//
// Example:
//
//	logger.Warn(errors.WithCause("Error, retrying in half a second...", err).Error())
func WithCause(message string, cause error) *ContextualError {
	return &ContextualError{message: message, cause: cause}
}
