package nixos

import (
	"io"
	"strings"

	"github.com/AnyTimeTraveler/dotscripts/exec"
	"github.com/AnyTimeTraveler/dotscripts/internal/cli"
)

// RebuildFilter renders nixos-rebuild output and copies every line to a log.
// Shown lines are prefixed with a newline so the dots printed for hidden
// lines stay on one row.
type RebuildFilter struct {
	log   io.Writer
	debug bool
	err   error
}

// NewRebuildFilter returns a filter logging to log. With debug set, lines
// that are normally hidden are shown too.
func NewRebuildFilter(log io.Writer, debug bool) *RebuildFilter {
	return &RebuildFilter{log: log, debug: debug}
}

// Transform implements exec.LineFilter.
func (f *RebuildFilter) Transform(line string) (string, bool) {
	if f.log != nil && f.err == nil {
		_, f.err = io.WriteString(f.log, line)
	}

	text := strings.TrimRight(line, "\r\n")
	switch {
	case strings.Contains(line, "error:"):
		return "\n" + cli.Failure.Render(text), true
	case isProgress(line):
		return "\n" + cli.Progress.Render(text), true
	case f.debug:
		return "\n" + cli.Detail.Render(text), true
	default:
		return ".", true
	}
}

// Err returns the first error writing the log.
func (f *RebuildFilter) Err() error {
	return f.err
}

func isProgress(line string) bool {
	return strings.Contains(line, "activating the configuration...") ||
		(strings.HasPrefix(line, "building ") && !strings.HasPrefix(line, "building '")) ||
		strings.HasPrefix(line, "building...") ||
		strings.Contains(line, " paths will be fetched (")
}

// GarbageFilter renders nix-collect-garbage output. Deletions become dots
// unless debug is set.
func GarbageFilter(debug bool) exec.LineFilter {
	return exec.LineFilterFunc(func(line string) (string, bool) {
		text := strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(line, "deleting '") || strings.HasPrefix(line, "removing stale link ") {
			if debug {
				return "\n" + cli.Detail.Render(text), true
			}
			return ".", true
		}
		return "\n" + cli.Progress.Render(text), true
	})
}
