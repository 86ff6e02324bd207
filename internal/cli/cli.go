// Package cli holds the plumbing shared by every binary under cmd/: running
// a cobra command, printing error chains, loading configuration and
// building the logger.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AnyTimeTraveler/dotscripts/errors"
	"github.com/AnyTimeTraveler/dotscripts/exec"
)

// ExitError carries a specific process exit code.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the message of the wrapped error.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Tool is the runtime state of one binary. Config, Logger and Executor are
// populated by the persistent pre-run hook installed by Bind.
type Tool struct {
	Name string

	Config   *viper.Viper
	Logger   *slog.Logger
	Executor exec.Executor

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewTool returns a Tool bound to the process's standard streams.
func NewTool(name string) *Tool {
	return &Tool{
		Name:   name,
		Logger: slog.New(slog.DiscardHandler),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Bind registers the flags every tool shares and loads configuration,
// logger and executor before cmd or any subcommand runs.
func (t *Tool) Bind(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("config", "", "config file (default is $XDG_CONFIG_HOME/dotscripts/"+t.Name+".yaml)")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetIn(t.Stdin)
	cmd.SetOut(t.Stdout)
	cmd.SetErr(t.Stderr)

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		return t.setup(c)
	}
}

func (t *Tool) setup(cmd *cobra.Command) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return errors.Wrap(err, "Failed to read --config flag")
	}

	cfg, err := LoadConfig(t.Name, configFile, cmd.Flags())
	if err != nil {
		return err
	}
	t.Config = cfg

	logger, err := NewLogger(t.Stderr, t.Name, cfg.GetString("log-level"))
	if err != nil {
		return err
	}
	t.Logger = logger

	if t.Executor == nil {
		t.Executor = exec.New(
			exec.WithLogger(logger),
			exec.WithStdout(t.Stdout),
			exec.WithStderr(t.Stderr),
		)
	}

	logger.Debug("configuration loaded", "file", cfg.ConfigFileUsed())
	return nil
}

// Run executes cmd and prints a failure as "Error: " followed by the full
// error chain. It returns the process exit code.
func Run(cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintln(stderr, Failure.Render("Error:"), err.Error())

	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code != 0 {
		return exitErr.Code
	}
	return 1
}

// Main runs cmd and exits the process with its exit code.
func Main(cmd *cobra.Command) {
	os.Exit(Run(cmd, os.Stderr))
}
