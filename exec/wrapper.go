package exec

import "io"

// CommandWrapper wraps an Executor to provide a command-specific interface.
// It prepends a program name to every Run call, which suits tools that are
// invoked repeatedly with different arguments (pactl, systemctl, swaymsg).
// CommandWrapper implements the Executor interface, allowing it to be used
// anywhere an Executor is expected.
type CommandWrapper struct {
	executor Executor
	cmd      string
}

// NewWrapper creates a new CommandWrapper that prepends cmd to all Run calls.
// The executor can be any implementation of Executor, including mocks.
func NewWrapper(executor Executor, cmd string) *CommandWrapper {
	return &CommandWrapper{
		executor: executor,
		cmd:      cmd,
	}
}

// Name returns the wrapped program name.
func (w *CommandWrapper) Name() string {
	return w.cmd
}

// WithEnv sets environment variables for the command.
func (w *CommandWrapper) WithEnv(env map[string]string) Executor {
	w.executor = w.executor.WithEnv(env)
	return w
}

// WithDir sets the working directory for the command.
func (w *CommandWrapper) WithDir(dir string) Executor {
	w.executor = w.executor.WithDir(dir)
	return w
}

// WithDisableColors disables color output.
func (w *CommandWrapper) WithDisableColors() Executor {
	w.executor = w.executor.WithDisableColors()
	return w
}

// WithStdout sets the stdout writer.
func (w *CommandWrapper) WithStdout(out io.Writer) Executor {
	w.executor = w.executor.WithStdout(out)
	return w
}

// WithStderr sets the stderr writer.
func (w *CommandWrapper) WithStderr(out io.Writer) Executor {
	w.executor = w.executor.WithStderr(out)
	return w
}

// Run executes the wrapped program with the given arguments.
func (w *CommandWrapper) Run(args ...string) (string, error) {
	return w.executor.Run(w.argv(args)...)
}

// RunWithExitStatus executes the wrapped program and returns its status.
func (w *CommandWrapper) RunWithExitStatus(args ...string) (*Result, error) {
	return w.executor.RunWithExitStatus(w.argv(args)...)
}

// RunWithInheritedStdio executes the wrapped program with inherited output.
func (w *CommandWrapper) RunWithInheritedStdio(args ...string) (ExitStatus, error) {
	return w.executor.RunWithInheritedStdio(w.argv(args)...)
}

// RunWithLiveOutput executes the wrapped program through filter.
func (w *CommandWrapper) RunWithLiveOutput(filter LineFilter, args ...string) (*Result, error) {
	return w.executor.RunWithLiveOutput(filter, w.argv(args)...)
}

// Clone creates a copy of the wrapper with the same configuration.
func (w *CommandWrapper) Clone() Executor {
	return &CommandWrapper{
		executor: w.executor.Clone(),
		cmd:      w.cmd,
	}
}

func (w *CommandWrapper) argv(args []string) []string {
	return append([]string{w.cmd}, args...)
}
