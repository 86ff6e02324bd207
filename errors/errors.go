// Package errors provides contextual error chains for command-line tools.
package errors

import (
	"fmt"
	"strings"
)

// causePrefix separates each link of a printed chain.
const causePrefix = "\n  caused by: "

// ContextualError is a single link in a causal chain of diagnostic messages.
//
// Each layer that observes a failure wraps it in a new ContextualError that
// owns the previous error as its cause. The outermost error describes what the
// program was trying to do, the innermost one what actually went wrong.
type ContextualError struct {
	message string
	cause   error
}

// Error returns the full chain, outermost message first:
//
//	Failed to start the program
//	  caused by: Failed to load configuration
//	  caused by: open config.toml: no such file or directory
//
// Causes that are not ContextualErrors terminate the chain and are printed
// with their %+v representation.
func (e *ContextualError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(e.message)
	for cause := e.cause; cause != nil; {
		b.WriteString(causePrefix)
		next, ok := cause.(*ContextualError)
		if !ok {
			fmt.Fprintf(&b, "%+v", cause)
			break
		}
		if next == nil {
			b.WriteString("<nil>")
			break
		}
		b.WriteString(next.message)
		cause = next.cause
	}
	return b.String()
}

// Message returns the message of this link only.
func (e *ContextualError) Message() string {
	return e.message
}

// Unwrap returns the cause for errors.Is and errors.As compatibility.
// Returns nil for the innermost link of a chain.
func (e *ContextualError) Unwrap() error {
	return e.cause
}
