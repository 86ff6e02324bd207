package exec

// LineFilter decides which lines of a running command are shown live.
//
// Transform is called synchronously, in order, once for every line read from
// either stream. The line includes its trailing newline. When ok is true the
// rendered string is written to the live output immediately. Filters may have
// side effects such as writing every line to a log file.
type LineFilter interface {
	Transform(line string) (rendered string, ok bool)
}

// LineFilterFunc adapts an ordinary function to the LineFilter interface.
type LineFilterFunc func(line string) (string, bool)

// Transform calls f(line).
func (f LineFilterFunc) Transform(line string) (string, bool) {
	return f(line)
}

// Discard is a LineFilter that never renders anything. The output is still
// recorded in the Result.
var Discard LineFilter = LineFilterFunc(func(string) (string, bool) {
	return "", false
})

// Echo is a LineFilter that renders every line unchanged.
var Echo LineFilter = LineFilterFunc(func(line string) (string, bool) {
	return line, true
})
