package exec

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/executor.go -pkg mocks . Executor

// Executor is the main interface for executing commands.
// It provides a fluent API for configuring and running commands.
//
// Every Run method takes the program as its first argument followed by the
// arguments passed to it. Commands are never interpreted by a shell and always
// read from the null device.
type Executor interface {
	// WithEnv sets environment variables for the command on top of the
	// parent's environment. These are local settings that override any
	// global environment variables.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory for the command.
	// Without it, the command runs in the working directory of the parent.
	WithDir(dir string) Executor

	// WithDisableColors disables color output by setting common environment variables.
	// This sets NO_COLOR=1, TERM=dumb, and other common color-disabling variables.
	WithDisableColors() Executor

	// WithStdout sets the writer receiving live output from RunWithLiveOutput
	// and the child's stdout in RunWithInheritedStdio.
	WithStdout(w io.Writer) Executor

	// WithStderr sets the writer receiving the child's stderr in RunWithInheritedStdio.
	WithStderr(w io.Writer) Executor

	// Run executes the command and returns its captured stdout followed by its
	// captured stderr. A nonzero exit status is returned as an error whose
	// chain contains an *ExecError with the captured output.
	Run(args ...string) (string, error)

	// RunWithExitStatus executes the command like Run but returns the exit
	// status instead of failing on a nonzero one.
	RunWithExitStatus(args ...string) (*Result, error)

	// RunWithInheritedStdio executes the command with stdout and stderr
	// connected directly to the configured writers, without capturing them.
	RunWithInheritedStdio(args ...string) (ExitStatus, error)

	// RunWithLiveOutput executes the command while reading stdout and stderr
	// line by line as they are produced. Every line is recorded in the
	// returned output and offered to filter; rendered lines are written to
	// the stdout writer immediately.
	RunWithLiveOutput(filter LineFilter, args ...string) (*Result, error)

	// Clone creates a copy of the executor with the same configuration.
	// Clones can be used concurrently with the original.
	Clone() Executor
}

// ExitStatus is the exit code of a finished process.
// Processes terminated by a signal report -1.
type ExitStatus int

// Success reports whether the process exited with status 0.
func (s ExitStatus) Success() bool {
	return s == 0
}

// Code returns the numeric exit code.
func (s ExitStatus) Code() int {
	return int(s)
}

// String returns a human-readable form of the status.
func (s ExitStatus) String() string {
	if s < 0 {
		return "terminated by signal"
	}
	return fmt.Sprintf("exit status %d", int(s))
}

// Result represents the outcome of a command execution.
type Result struct {
	// Status is the authoritative exit status of the command.
	Status ExitStatus

	// Output is the captured output. For RunWithExitStatus it is stdout
	// followed by stderr; for RunWithLiveOutput every line in arrival order.
	Output string
}

// Success reports whether the command exited with status 0.
func (r *Result) Success() bool {
	return r.Status.Success()
}

// Option is a function that configures a Command with global settings.
// These settings are applied at creation time and can be overridden by local settings.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.global.env[k] = v
		}
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.global.dir = dir
	}
}

// WithDisableColors returns an Option that globally disables color output.
func WithDisableColors() Option {
	return func(c *Command) {
		c.config.global.disableColors = true
	}
}

// WithStdout returns an Option that sets the stdout writer.
func WithStdout(w io.Writer) Option {
	return func(c *Command) {
		c.stdout = w
	}
}

// WithStderr returns an Option that sets the stderr writer.
func WithStderr(w io.Writer) Option {
	return func(c *Command) {
		c.stderr = w
	}
}

// WithLogger returns an Option that sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Command) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// RunSimple splits cmdline on whitespace and runs it with e.Run.
// No shell syntax (quoting, globbing, pipes) is interpreted.
//
// Example:
//
//	output, err := exec.RunSimple(executor, "ip a")
func RunSimple(e Executor, cmdline string) (string, error) {
	args := strings.Fields(cmdline)
	if len(args) == 0 {
		return "", errors.New("No command supplied")
	}
	return e.Run(args...)
}
