package errors

import "fmt"

// Attempt holds the outcome of an operation that either produced a value or
// failed. It lets a multi-value call be annotated in a single expression:
//
//	data, err := errors.Try(os.ReadFile(path)).Contextf("Could not read %s", path)
//
// An Attempt built with Lookup represents an optional value; a missing value
// becomes a ContextualError without cause.
type Attempt[T any] struct {
	value   T
	err     error
	missing bool
}

// Try captures the (value, error) result of a call.
func Try[T any](value T, err error) Attempt[T] {
	return Attempt[T]{value: value, err: err}
}

// Lookup captures the (value, ok) result of an optional lookup such as a map
// access or a search.
func Lookup[T any](value T, ok bool) Attempt[T] {
	return Attempt[T]{value: value, missing: !ok}
}

// Failed reports whether the attempt holds an error or a missing value.
func (a Attempt[T]) Failed() bool {
	return a.err != nil || a.missing
}

// Context returns the value, or a ContextualError carrying message on failure.
func (a Attempt[T]) Context(message string) (T, error) {
	if !a.Failed() {
		return a.value, nil
	}
	var zero T
	return zero, &ContextualError{message: message, cause: a.err}
}

// Contextf is Context with a formatted message.
func (a Attempt[T]) Contextf(format string, args ...any) (T, error) {
	if !a.Failed() {
		return a.value, nil
	}
	var zero T
	return zero, &ContextualError{message: fmt.Sprintf(format, args...), cause: a.err}
}

// ContextFunc is Context with a lazily built message; fn only runs on failure.
func (a Attempt[T]) ContextFunc(fn func() string) (T, error) {
	if !a.Failed() {
		return a.value, nil
	}
	var zero T
	return zero, &ContextualError{message: fn(), cause: a.err}
}
