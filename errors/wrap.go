package errors

import "fmt"

// Wrap adds a layer of context to a failing operation.
// The wrapped error is preserved as the cause and remains reachable through
// errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := os.Chdir(dir); err != nil {
//	    return errors.Wrap(err, "Failed to cd to nix config directory")
//	}
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &ContextualError{message: message, cause: err}
}

// Wrapf adds a formatted layer of context to a failing operation.
// Formatting only happens when err is non-nil.
//
// Returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &ContextualError{message: fmt.Sprintf(format, args...), cause: err}
}

// WrapFunc adds a layer of context whose message is produced by fn.
// fn is only called when err is non-nil, which keeps expensive message
// construction off the success path.
//
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WrapFunc(err, func() string {
//	    return fmt.Sprintf("Unexpected ping output:\n%s", output)
//	})
func WrapFunc(err error, fn func() string) error {
	if err == nil {
		return nil
	}
	return &ContextualError{message: fn(), cause: err}
}
