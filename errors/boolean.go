package errors

// ErrorIfFalse returns an error carrying message when value is false.
// The value is passed through unchanged.
//
// Example:
//
//	if _, err := errors.ErrorIfFalse(status.Success(), "swaymsg rejected the configuration"); err != nil {
//	    return err
//	}
func ErrorIfFalse(value bool, message string) (bool, error) {
	if value {
		return value, nil
	}
	return value, New(message)
}

// ErrorIfTrue returns an error carrying message when value is true.
func ErrorIfTrue(value bool, message string) (bool, error) {
	if !value {
		return value, nil
	}
	return value, New(message)
}

// ErrorIfFalseFunc is ErrorIfFalse with a message built only on failure.
func ErrorIfFalseFunc(value bool, fn func() string) (bool, error) {
	if value {
		return value, nil
	}
	return value, New(fn())
}

// ErrorIfTrueFunc is ErrorIfTrue with a message built only on failure.
func ErrorIfTrueFunc(value bool, fn func() string) (bool, error) {
	if !value {
		return value, nil
	}
	return value, New(fn())
}
