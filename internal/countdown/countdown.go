// Package countdown counts the days until a date stored in a file.
package countdown

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

// DateLayout is the format of the target date, DD.MM.YYYY.
const DateLayout = "02.01.2006"

// TargetPath returns the location of the target date below home.
func TargetPath(home string) string {
	return filepath.Join(home, ".data", "day_countdown_target_date")
}

// ReadTarget reads and parses the target date stored at name.
func ReadTarget(fsys billy.Filesystem, name string) (time.Time, error) {
	data, err := util.ReadFile(fsys, name)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "Could not find target date at: %q", name)
	}

	target, err := time.ParseInLocation(DateLayout, strings.TrimSpace(string(data)), time.Local)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "Unexpected date format. Expected format: DD.MM.YYYY")
	}
	return target, nil
}

// DaysUntil returns the number of calendar days from now to target.
func DaysUntil(target, now time.Time) int {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// Message renders the remaining days.
func Message(days int) string {
	switch {
	case days <= 0:
		return "In my arms! \U0001F970\ufe0f"
	case days == 1:
		return "Tomorrow! \u2665\ufe0f"
	default:
		return fmt.Sprintf("%d Days \u2665\ufe0f", days)
	}
}
