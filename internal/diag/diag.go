// Package diag extracts the interesting part of a failed command's output.
package diag

import "strings"

// Marked is a line selected by MarkedWindow.
type Marked struct {
	Line string

	// Match is true for the line that opened the window.
	Match bool
}

// MarkedWindow scans output line by line. A line satisfying match is kept
// together with up to k following lines. A matching line inside a window
// starts a new window.
func MarkedWindow(output string, match func(line string) bool, k int) []Marked {
	var (
		lines     []Marked
		remaining int
	)

	if output == "" {
		return nil
	}

	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
		switch {
		case match(line):
			lines = append(lines, Marked{Line: line, Match: true})
			remaining = k
		case remaining > 0:
			lines = append(lines, Marked{Line: line})
			remaining--
		}
	}

	return lines
}

// Window is MarkedWindow without the markers.
func Window(output string, match func(line string) bool, k int) []string {
	marked := MarkedWindow(output, match, k)
	if marked == nil {
		return nil
	}

	lines := make([]string, len(marked))
	for i, m := range marked {
		lines[i] = m.Line
	}
	return lines
}

// Contains returns a matcher for lines containing marker.
func Contains(marker string) func(string) bool {
	return func(line string) bool {
		return strings.Contains(line, marker)
	}
}
