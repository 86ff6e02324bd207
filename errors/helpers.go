package errors

import (
	stderrors "errors"
	"fmt"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var execErr *exec.ExecError
//	if errors.As(err, &execErr) {
//	    fmt.Println(execErr.Output)
//	}
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the cause of err, or nil.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Chain returns the messages of err's causal chain, outermost first.
//
// Every ContextualError contributes its own message. The first error that is
// not a ContextualError ends the chain and contributes its %+v representation.
// Returns nil if err is nil.
func Chain(err error) []string {
	if err == nil {
		return nil
	}

	var messages []string
	for err != nil {
		link, ok := err.(*ContextualError)
		if !ok {
			messages = append(messages, fmt.Sprintf("%+v", err))
			break
		}
		if link == nil {
			messages = append(messages, "<nil>")
			break
		}
		messages = append(messages, link.message)
		err = link.cause
	}
	return messages
}

// Root returns the innermost error of err's chain.
// Returns nil if err is nil.
func Root(err error) error {
	for err != nil {
		next := stderrors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}
