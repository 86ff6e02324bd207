package fileops

import (
	"path"
	"regexp"
	"strings"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

// Placeholder is replaced by capture groups in a format string.
const Placeholder = "{}"

// Fill replaces the placeholders of format, left to right, with groups.
// It fails when placeholders remain.
func Fill(format string, groups []string) (string, error) {
	filled := format
	for _, g := range groups {
		filled = strings.Replace(filled, Placeholder, g, 1)
	}

	if strings.Contains(filled, Placeholder) {
		return "", errors.Newf("Target format string still contains {}!\nPartially filled in format string: %s", filled)
	}
	return filled, nil
}

// Step is one planned copy.
type Step struct {
	// Match is the name of the file in the scanned directory that matched.
	Match string

	// Source is the filled format string.
	Source string

	// Target is the destination path in the target directory.
	Target string

	// Missing is set when Source does not exist; such steps are skipped.
	Missing bool
}

// RegexCopy copies a file for every name in SrcDir that matches Pattern.
// The file copied is named by Format, whose placeholders are filled with
// the capture groups of the match, or the whole match when the pattern has
// no groups.
type RegexCopy struct {
	Pattern   *regexp.Regexp
	Format    string
	SrcDir    string
	TargetDir string
}

// Plan scans SrcDir and returns the copy steps in directory order.
func (r *RegexCopy) Plan(c *Copier) ([]Step, error) {
	for _, dir := range []struct{ name, path string }{{"Source", r.SrcDir}, {"Target", r.TargetDir}} {
		ok, err := c.Exists(dir.path)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Newf("%s path does not exist", dir.name)
		}
	}

	entries, err := c.FS.ReadDir(r.SrcDir)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read directory")
	}

	var steps []Step
	for _, entry := range entries {
		name := entry.Name()
		c.logger().Debug("consider", "name", name)

		m := r.Pattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		c.logger().Debug("matches", "match", m[0])

		groups := m[1:]
		if len(groups) == 0 {
			groups = m[:1]
		}

		source, err := Fill(r.Format, groups)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to fill format string for %s", name)
		}

		base := path.Base(source)
		if base == "." || base == "/" || base == "" {
			return nil, errors.Newf("Invalid file name '%s'", source)
		}

		exists, err := c.Exists(source)
		if err != nil {
			return nil, err
		}

		steps = append(steps, Step{
			Match:   name,
			Source:  source,
			Target:  path.Join(r.TargetDir, base),
			Missing: !exists,
		})
	}

	return steps, nil
}

// Apply executes the steps that are not missing. Nothing is written in a
// dry run.
func (c *Copier) Apply(steps []Step, dryRun bool) error {
	for _, step := range steps {
		if step.Missing {
			c.logger().Warn("Source does not exist", "source", step.Source)
			continue
		}

		c.logger().Info("copying", "match", step.Match, "from", step.Source, "to", step.Target)
		if dryRun {
			continue
		}
		if err := c.CopyFile(step.Source, step.Target); err != nil {
			return errors.Wrap(err, "Copying failed")
		}
	}
	return nil
}
