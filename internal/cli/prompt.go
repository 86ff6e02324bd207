package cli

import (
	"io"

	"github.com/charmbracelet/huh"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

// Confirm asks question on out and reads the answer from in. An empty
// answer confirms.
func Confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	ok := true

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(question).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	)).
		WithInput(in).
		WithOutput(out).
		WithAccessible(true).
		WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, errors.Wrap(err, "Failed to read answer")
	}
	return ok, nil
}
