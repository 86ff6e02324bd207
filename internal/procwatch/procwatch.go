// Package procwatch waits for external processes to go away.
package procwatch

import (
	"log/slog"
	"strings"
	"time"

	"github.com/AnyTimeTraveler/dotscripts/exec"
)

// DefaultInterval is the delay between two checks.
const DefaultInterval = 250 * time.Millisecond

// Poller checks for running processes with pgrep.
type Poller struct {
	Executor exec.Executor
	Interval time.Duration
	Logger   *slog.Logger

	// Sleep is called between checks. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// New returns a Poller using e and the default interval.
func New(e exec.Executor) *Poller {
	return &Poller{Executor: e, Interval: DefaultInterval}
}

// Running reports whether a process matching pattern exists.
//
// A pgrep that cannot run or exits nonzero counts as "not running". pgrep
// exits 1 when nothing matches, so the two are treated alike.
func (p *Poller) Running(pattern string) bool {
	out, err := p.Executor.Run("pgrep", pattern)
	if err != nil {
		p.logger().Debug("pgrep failed, assuming process exited", "pattern", pattern, "error", err)
		return false
	}
	return strings.TrimSpace(out) != ""
}

// WaitForExit blocks until no process matches pattern. It never cancels
// the watched process.
func (p *Poller) WaitForExit(pattern string) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	for p.Running(pattern) {
		sleep(interval)
	}
}

func (p *Poller) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
