package exec

import (
	"fmt"
	"strings"
)

// ExecError describes a command that ran to completion with a nonzero exit
// status. It carries the captured output so callers can inspect it without
// running the command again.
type ExecError struct {
	// Command is the full command that was executed (including arguments)
	Command []string

	// Status is the exit status returned by the command
	Status ExitStatus

	// Output is the captured stdout followed by the captured stderr
	Output string
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	return fmt.Sprintf("Exited with %s and output: '%s'", e.Status, e.Output)
}

// String returns the command line that failed.
func (e *ExecError) String() string {
	return strings.Join(e.Command, " ")
}
