package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

// NewLogger returns a slog.Logger that writes human-readable records to w,
// prefixed with the tool name.
func NewLogger(w io.Writer, tool, level string) (*slog.Logger, error) {
	lvl := log.WarnLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, errors.Wrapf(err, "Invalid log level '%s'", level)
		}
		lvl = parsed
	}

	handler := log.NewWithOptions(w, log.Options{
		Prefix:          tool,
		Level:           lvl,
		ReportTimestamp: true,
	})

	return slog.New(handler), nil
}
