package exec

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

// Command is the concrete implementation of the Executor interface.
// It provides command execution with configurable settings.
type Command struct {
	config *config
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// New creates a new Command with the given options.
// Options set global defaults that can be overridden by local settings.
func New(opts ...Option) *Command {
	cmd := &Command{
		config: newConfig(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// WithEnv sets environment variables for the command.
func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.config.localEnv[k] = v
	}
	return c
}

// WithDir sets the working directory for the command.
func (c *Command) WithDir(dir string) Executor {
	c.config.localDir = dir
	return c
}

// WithDisableColors disables color output.
func (c *Command) WithDisableColors() Executor {
	val := true
	c.config.localDisableColors = &val
	return c
}

// WithStdout sets the stdout writer.
func (c *Command) WithStdout(w io.Writer) Executor {
	c.stdout = w
	return c
}

// WithStderr sets the stderr writer.
func (c *Command) WithStderr(w io.Writer) Executor {
	c.stderr = w
	return c
}

// Run executes the command and returns stdout followed by stderr.
func (c *Command) Run(args ...string) (string, error) {
	result, err := c.RunWithExitStatus(args...)
	if err != nil {
		return "", err
	}

	if !result.Success() {
		return "", errors.Wrapf(&ExecError{
			Command: args,
			Status:  result.Status,
			Output:  result.Output,
		}, "Command '%s' exited non-cleanly", args[0])
	}

	return result.Output, nil
}

// RunWithExitStatus executes the command and returns its status and output
// without judging the status.
func (c *Command) RunWithExitStatus(args ...string) (*Result, error) {
	s, err := c.prepare(args)
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd := command(s, args)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	proc, err := start(cmd, args[0])
	if err != nil {
		return nil, err
	}

	status, err := proc.wait()
	if err != nil {
		return nil, err
	}
	c.logger.Debug("command finished", "command", args[0], "status", status.Code())

	return &Result{
		Status: status,
		Output: stdout.String() + stderr.String(),
	}, nil
}

// RunWithInheritedStdio executes the command with its output connected
// directly to the configured writers.
func (c *Command) RunWithInheritedStdio(args ...string) (ExitStatus, error) {
	s, err := c.prepare(args)
	if err != nil {
		return -1, err
	}

	cmd := command(s, args)
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	proc, err := start(cmd, args[0])
	if err != nil {
		return -1, err
	}

	status, err := proc.wait()
	if err != nil {
		return -1, err
	}
	c.logger.Debug("command finished", "command", args[0], "status", status.Code())

	return status, nil
}

// RunWithLiveOutput executes the command while multiplexing its output
// streams line by line through filter. A nil filter behaves like Discard.
func (c *Command) RunWithLiveOutput(filter LineFilter, args ...string) (*Result, error) {
	s, err := c.prepare(args)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = Discard
	}

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to create stdout pipe for command '%s'", args[0])
	}
	defer stdoutR.Close()

	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		stdoutW.Close()
		return nil, errors.Wrapf(err, "Failed to create stderr pipe for command '%s'", args[0])
	}
	defer stderrR.Close()

	cmd := command(s, args)
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	proc, err := start(cmd, args[0])

	// The child holds its own copies of the write ends.
	stdoutW.Close()
	stderrW.Close()

	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)

	mux := &multiplexer{proc: proc, filter: filter, sink: c.stdout}
	if err := mux.run(readLines(stdoutR, done), readLines(stderrR, done)); err != nil {
		return nil, err
	}

	status, err := proc.wait()
	if err != nil {
		return nil, err
	}
	c.logger.Debug("command finished", "command", args[0], "status", status.Code())

	return &Result{
		Status: status,
		Output: mux.Output(),
	}, nil
}

// Clone creates a copy of the executor with the same configuration.
func (c *Command) Clone() Executor {
	return &Command{
		config: c.config.clone(),
		stdout: c.stdout,
		stderr: c.stderr,
		logger: c.logger,
	}
}

// prepare validates args and resolves the settings for one run. Local
// settings are consumed by the run.
func (c *Command) prepare(args []string) (settings, error) {
	s := c.config.effective()
	c.config.resetLocal()

	if len(args) == 0 || args[0] == "" {
		return s, errors.New("No command supplied")
	}

	c.logger.Debug("running command", "args", args, "dir", s.dir)

	return s, nil
}
