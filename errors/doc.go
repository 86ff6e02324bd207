// Package errors provides contextual error chains.
//
// A ContextualError is a message plus an optional cause. Every layer of a
// program that observes a failure adds one link describing what it was trying
// to do, and a terminal consumer prints the whole chain, which reads almost
// like a stack trace:
//
//	Failed to start the program
//	  caused by: Failed to load configuration
//	  caused by: Failed to read file
//	  caused by: open config.toml: no such file or directory
//
// The package is fully compatible with the standard library errors package
// (errors.Is, errors.As, errors.Unwrap): the cause of every link is exposed
// through Unwrap.
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New("No sinks found!")
//	err := errors.Newf("Unknown argument '%s'", arg)
//
// Wrapping errors:
//
//	if err := os.Chdir(dir); err != nil {
//	    return errors.Wrap(err, "Failed to cd to nix config directory")
//	}
//
// Lazily built messages, only formatted on the failure path:
//
//	err = errors.WrapFunc(err, func() string {
//	    return fmt.Sprintf("Failed to set profile '%s'", profile)
//	})
//
// # Multi-value Results
//
// Try and Lookup annotate (value, error) and (value, ok) results in a single
// expression:
//
//	data, err := errors.Try(os.ReadFile(path)).Context("Could not read target date")
//	first, err := errors.Lookup(first(sinks)).Context("No sinks found!")
//
// # Boolean Checks
//
// ErrorIfFalse and ErrorIfTrue turn an unexpected boolean into an error:
//
//	if _, err := errors.ErrorIfFalse(exists, "Source path does not exist"); err != nil {
//	    return err
//	}
//
// # Serialization
//
// Chain returns the printed lines of a chain and ToJSON converts any error
// into an ErrorResponse:
//
//	{"message":"Failed to load configuration","causes":["File not found"]}
//
// Formatting is iterative, so chains of arbitrary depth never overflow the
// stack.
package errors
