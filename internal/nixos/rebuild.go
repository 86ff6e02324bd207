// Package nixos drives an interactive NixOS configuration update: edit,
// format, review, rebuild, clean up and commit.
package nixos

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/google/uuid"

	"github.com/AnyTimeTraveler/dotscripts/errors"
	"github.com/AnyTimeTraveler/dotscripts/exec"
	"github.com/AnyTimeTraveler/dotscripts/internal/cli"
	"github.com/AnyTimeTraveler/dotscripts/internal/diag"
	"github.com/AnyTimeTraveler/dotscripts/internal/procwatch"
)

// LogFileName is written inside the configuration directory on every rebuild.
const LogFileName = "nixos-rebuild.log"

// errorContext is the number of lines shown after every "error:" line of a
// failed rebuild.
const errorContext = 1

// Options control a rebuild.
type Options struct {
	Editor        string
	EditorArgs    string
	EditorProcess string

	// Dir is the configuration repository. Commands run in the current
	// working directory, which is expected to be Dir.
	Dir string

	OptimizeStore bool
	DryRun        bool
	Boot          bool
	Debug         bool
}

// DefaultOptions returns the options used without flags.
func DefaultOptions() Options {
	return Options{
		Editor:        "subl",
		EditorArgs:    "--wait .",
		EditorProcess: "sublime",
		Dir:           "/etc/nixos",
	}
}

// Rebuilder runs the update.
type Rebuilder struct {
	Executor exec.Executor
	Options  Options

	// FS is rooted at the configuration directory and receives the log file.
	FS      billy.Filesystem
	Watcher *procwatch.Poller
	Logger  *slog.Logger

	Stdin  io.Reader
	Stdout io.Writer
}

// New returns a Rebuilder using e and fsys.
func New(e exec.Executor, fsys billy.Filesystem, opts Options) *Rebuilder {
	return &Rebuilder{
		Executor: e,
		Options:  opts,
		FS:       fsys,
		Watcher:  procwatch.New(e),
		Logger:   slog.New(slog.DiscardHandler),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}
}

func (r *Rebuilder) println(a ...any) {
	fmt.Fprintln(r.Stdout, a...)
}

// Run performs every step in order and stops at the first failure.
func (r *Rebuilder) Run() error {
	if err := r.Edit(); err != nil {
		return err
	}
	if err := r.Format(); err != nil {
		return errors.Wrap(err, "Failed to format nix config")
	}
	if _, err := r.Executor.Run("git", "add", "-A"); err != nil {
		return err
	}

	changed, err := r.CheckChanges()
	if err != nil {
		return errors.Wrap(err, "Failed to check for git changes")
	}
	if err := r.ShowDiff(); err != nil {
		return errors.Wrap(err, "Failed to display diff of changes")
	}

	r.println(cli.Success.Render("NixOS Upgrade!"))
	r.println(cli.Success.Render(" 1. Rebuilding..."))
	if err := r.Rebuild(); err != nil {
		return errors.Wrap(err, "Nixos rebuild failed")
	}

	fmt.Fprint(r.Stdout, cli.Success.Render(" 2. Collecting garbage..."))
	if err := r.CollectGarbage(); err != nil {
		return errors.Wrap(err, "Collecting garbage failed")
	}

	if r.Options.OptimizeStore {
		r.println(cli.Success.Render(" 3. Optimizing nix-store..."))
		if r.Options.DryRun {
			r.println(cli.Alert.Render("   Not running, has no dry-run option"))
		} else if err := r.Optimise(); err != nil {
			return errors.Wrap(err, "Failed to optimize nix-store")
		}
	}

	gen, err := r.Generation()
	if err != nil {
		return err
	}
	r.println(cli.Success.Render("New generation:"), gen.Summary())

	if changed {
		r.println(cli.Success.Render(" 4. Committing and pushing..."))
		if err := r.CommitAndPush(gen.Line); err != nil {
			return errors.Wrap(err, "Failed to commit and push")
		}
	}

	r.println(cli.Success.Render("\n=====================\n= NixOS Rebuilt OK! =\n=====================\n"))
	return errors.Wrap(r.Notify("NixOS Rebuilt OK!"), "Failed to show notification")
}

// Edit opens the editor and waits until its process is gone. Editors such
// as Sublime Text return before the window is closed.
func (r *Rebuilder) Edit() error {
	args := append([]string{r.Options.Editor}, strings.Fields(r.Options.EditorArgs)...)
	if _, err := r.Executor.Run(args...); err != nil {
		return err
	}

	r.println(cli.Success.Render(fmt.Sprintf("Waiting for %s to close...", r.Options.EditorProcess)))
	r.Watcher.WaitForExit(r.Options.EditorProcess)
	return nil
}

// Format runs alejandra over the configuration. On failure its output is
// printed with the offending lines highlighted.
func (r *Rebuilder) Format() error {
	result, err := r.Executor.RunWithExitStatus("alejandra", ".")
	if err != nil {
		return err
	}
	if result.Success() {
		return nil
	}

	for _, line := range strings.Split(strings.TrimRight(result.Output, "\n"), "\n") {
		if strings.Contains(line, "Failed!") || strings.Contains(line, " at ") {
			line = cli.Failure.Render(line)
		}
		r.println(line)
	}
	r.println(cli.Abort.Render("Aborting!"))
	return errors.New("Formatting nix config failed!")
}

// CheckChanges reports whether anything is staged. Without changes the user
// is asked whether to continue anyway.
func (r *Rebuilder) CheckChanges() (bool, error) {
	changed, err := HasStagedChanges(r.Options.Dir)
	if err != nil {
		return false, err
	}
	if changed {
		return true, nil
	}

	ok, err := cli.Confirm(r.Stdin, r.Stdout, "No changes. Want to run anyway?")
	if err != nil {
		return false, err
	}
	if !ok {
		return false, errors.New("User aborted program.")
	}
	return false, nil
}

// ShowDiff prints the staged changes.
func (r *Rebuilder) ShowDiff() error {
	out, err := r.Executor.Run("git", "diff", "--staged", "-U0", "--color=always")
	if err != nil {
		return err
	}

	fmt.Fprint(r.Stdout, cli.Success.Render("Diff:"))
	if strings.TrimSpace(out) == "" {
		r.println(" <EMPTY>")
		return nil
	}

	border := cli.Border.Render("=====================")
	r.println()
	r.println(border)
	r.println(out)
	r.println(border)
	return nil
}

func (r *Rebuilder) mode() string {
	switch {
	case r.Options.DryRun:
		return "dry-build"
	case r.Options.Boot:
		return "boot"
	default:
		return "switch"
	}
}

// Rebuild runs nixos-rebuild, showing progress live and writing the full
// output to LogFileName. On failure the error lines are printed with their
// context.
func (r *Rebuilder) Rebuild() error {
	log, err := r.FS.Create(LogFileName)
	if err != nil {
		return errors.Wrapf(err, "Failed to open '%s'", LogFileName)
	}
	defer log.Close()

	runID := uuid.NewString()
	r.Logger.Info("rebuilding", "run", runID, "mode", r.mode(), "log", LogFileName)
	if _, err := fmt.Fprintf(log, "# nixos-rebuild %s run %s\n", r.mode(), runID); err != nil {
		return errors.Wrapf(err, "Failed to write '%s'", LogFileName)
	}

	filter := NewRebuildFilter(log, r.Options.Debug)
	result, err := r.Executor.RunWithLiveOutput(filter,
		"sudo", "nixos-rebuild", r.mode(), "--upgrade-all", "--show-trace")
	if err != nil {
		return errors.Wrap(err, "Command nixos-rebuild exited non-cleanly")
	}
	r.println()

	if err := filter.Err(); err != nil {
		r.Logger.Warn("incomplete rebuild log", "run", runID, "error", err)
	}

	if result.Success() {
		return nil
	}

	for _, m := range diag.MarkedWindow(result.Output, diag.Contains("error:"), errorContext) {
		if m.Match {
			r.println(cli.Failure.Render(m.Line))
		} else {
			r.println(cli.Alert.Render(m.Line))
		}
	}
	r.println(cli.Abort.Render("Aborting!"))
	return errors.New("Rebuilding failed.")
}

// CollectGarbage deletes generations older than 30 days.
func (r *Rebuilder) CollectGarbage() error {
	args := []string{"sudo", "nix-collect-garbage", "--delete-older-than", "30d"}
	if r.Options.DryRun {
		args = append(args, "--dry-run")
	}

	result, err := r.Executor.RunWithLiveOutput(GarbageFilter(r.Options.Debug), args...)
	if err != nil {
		return err
	}
	r.println()

	if result.Success() {
		return nil
	}

	r.println("Error:")
	r.println(strings.TrimSpace(result.Output))
	r.println(cli.Abort.Render("Aborting!"))
	return errors.New("nix-collect-garbage failed.")
}

// Optimise deduplicates the nix store. nix-store draws its own progress bar
// so the output is not captured.
func (r *Rebuilder) Optimise() error {
	status, err := r.Executor.RunWithInheritedStdio(
		"sudo", "nix-store", "--optimise", "--log-format", "bar", "--cores", "0")
	if err != nil {
		return err
	}
	if !status.Success() {
		return errors.Newf("nix-store --optimise failed with %s", status)
	}
	return nil
}

// Generation returns the current system generation.
func (r *Rebuilder) Generation() (*Generation, error) {
	out, err := r.Executor.Run("nixos-rebuild", "list-generations")
	if err != nil {
		return nil, err
	}
	return ParseGeneration(out)
}

// CommitAndPush commits the staged changes with message and pushes them.
func (r *Rebuilder) CommitAndPush(message string) error {
	if _, err := r.Executor.Run("git", "commit", "-m", message); err != nil {
		return err
	}
	_, err := r.Executor.Run("git", "push")
	return err
}

// Notify shows a desktop notification.
func (r *Rebuilder) Notify(message string) error {
	_, err := r.Executor.Run("notify-send", "-e", message, "--icon=software-update-available")
	return err
}
