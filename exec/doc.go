// Package exec runs external programs and reports their outcome.
//
// Programs are always started from an argument vector, never through a
// shell, and always read from the null device. The Command type implements
// the Executor interface; code that shells out accepts an Executor so tests
// can substitute the generated mock in the mocks package.
//
// # Execution Modes
//
// Run captures stdout and stderr and returns them concatenated, stdout
// first. A nonzero exit status is an error whose chain contains an
// *ExecError carrying the captured text:
//
//	out, err := exec.New().Run("ip", "a")
//
// RunWithExitStatus captures the same way but leaves the status to the
// caller:
//
//	result, err := exec.New().RunWithExitStatus("pgrep", "-x", "firefox")
//	if err == nil && !result.Success() {
//		// not running
//	}
//
// RunWithInheritedStdio connects the child's output to the configured
// writers (os.Stdout and os.Stderr by default) without capturing it.
//
// RunWithLiveOutput reads both streams line by line as they are produced.
// Every line is recorded in the result, in arrival order, and offered to a
// LineFilter. Lines the filter renders are written to the stdout writer and
// flushed immediately:
//
//	filter := exec.LineFilterFunc(func(line string) (string, bool) {
//		if strings.HasPrefix(line, "building") {
//			return line, true
//		}
//		return "", false
//	})
//	result, err := exec.New().RunWithLiveOutput(filter, "nixos-rebuild", "switch")
//
// The live path returns only after both streams reached end of stream and
// the process was observed to exit. A child that closes its descriptors
// early and keeps running is waited for, and its real exit status is
// reported.
//
// # Configuration
//
// Options passed to New are global. The With methods set local values that
// override them for the next run only:
//
//	e := exec.New(exec.WithDisableColors())
//	out, err := e.WithDir("/etc/nixos").Run("git", "status", "--porcelain")
//
// Environment variables are added on top of the parent's environment.
//
// # Command Wrappers
//
//	pactl := exec.NewWrapper(exec.New(), "pactl")
//	out, err := pactl.Run("get-default-sink")
//
// # Concurrency
//
// A Command is not safe for concurrent use because local settings are
// stored on it. Use Clone to obtain an independent executor per goroutine.
package exec
