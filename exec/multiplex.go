package exec

import (
	"bufio"
	"io"
	"strings"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

// lineEvent is one line read from a stream, or the error that ended it.
type lineEvent struct {
	line string
	err  error
}

// flusher is implemented by buffered sinks such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// readLines reads r line by line and sends every line, without its line
// terminator, on the returned channel. The channel is closed at end of
// stream. A read error is sent as the last event. Sending stops early once
// done is closed.
func readLines(r io.Reader, done <-chan struct{}) <-chan lineEvent {
	events := make(chan lineEvent)

	go func() {
		defer close(events)

		send := func(ev lineEvent) bool {
			select {
			case events <- ev:
				return true
			case <-done:
				return false
			}
		}

		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				if !send(lineEvent{line: line}) {
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				send(lineEvent{err: err})
				return
			}
		}
	}()

	return events
}

// multiplexer drains the stdout and stderr line streams of one process.
type multiplexer struct {
	proc   *process
	filter LineFilter
	sink   io.Writer
	buf    strings.Builder
}

// run selects over both streams until both have ended and the process has
// been observed to exit. Closing the pipes does not prove the process is
// gone, so liveness is checked after every line and awaited at the end.
func (m *multiplexer) run(stdout, stderr <-chan lineEvent) error {
	for stdout != nil || stderr != nil || !m.proc.done {
		select {
		case ev, ok := <-stdout:
			if !ok {
				stdout = nil
				continue
			}
			if ev.err != nil {
				return errors.Wrapf(ev.err, "Could not read next line from stdout for process '%s'", m.proc.name)
			}
			if err := m.handle(ev.line); err != nil {
				return err
			}
		case ev, ok := <-stderr:
			if !ok {
				stderr = nil
				continue
			}
			if ev.err != nil {
				return errors.Wrapf(ev.err, "Could not read next line from stderr for process '%s'", m.proc.name)
			}
			if err := m.handle(ev.line); err != nil {
				return err
			}
		case err := <-m.proc.exited:
			m.proc.observe(err)
		}

		m.proc.tryWait()
	}

	return nil
}

// handle records line and offers it to the filter.
func (m *multiplexer) handle(line string) error {
	line += "\n"
	m.buf.WriteString(line)

	rendered, ok := m.filter.Transform(line)
	if !ok {
		return nil
	}

	if _, err := io.WriteString(m.sink, rendered); err != nil {
		return errors.Wrapf(err, "Could not write output of process '%s'", m.proc.name)
	}
	if f, isFlusher := m.sink.(flusher); isFlusher {
		if err := f.Flush(); err != nil {
			return errors.Wrapf(err, "Could not flush output of process '%s'", m.proc.name)
		}
	}

	return nil
}

// Output returns every line observed so far in arrival order.
func (m *multiplexer) Output() string {
	return m.buf.String()
}
