// Command regex-copier copies files named after the matches of a regular
// expression.
package main

import (
	"path/filepath"
	"regexp"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/AnyTimeTraveler/dotscripts/errors"
	"github.com/AnyTimeTraveler/dotscripts/internal/cli"
	"github.com/AnyTimeTraveler/dotscripts/internal/fileops"
)

func newRootCommand(t *cli.Tool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regex-copier <src> <regex> <format> <target>",
		Short: "Copy the file named by format for every match of regex in src",
		Long: `For every file in src whose name matches regex, every {} in format is
replaced by the next capture group (or the whole match when the expression
has none). The resulting path is copied into target.`,
		Args: cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			pattern, err := regexp.Compile(args[1])
			if err != nil {
				return errors.Wrapf(err, "Invalid regex '%s'", args[1])
			}

			var dirs [2]string
			for i, dir := range []string{args[0], args[3]} {
				if dirs[i], err = filepath.Abs(dir); err != nil {
					return errors.Wrapf(err, "Invalid path %s", dir)
				}
			}

			c := fileops.NewCopier(osfs.New("/"))
			c.Logger = t.Logger
			c.Warnings = t.Stderr

			job := &fileops.RegexCopy{
				Pattern:   pattern,
				Format:    args[2],
				SrcDir:    dirs[0],
				TargetDir: dirs[1],
			}
			steps, err := job.Plan(c)
			if err != nil {
				return err
			}
			return c.Apply(steps, t.Config.GetBool("dry-run"))
		},
	}

	cmd.Flags().Bool("dry-run", false, "only log what would be copied")

	t.Bind(cmd)
	return cmd
}

func main() {
	cli.Main(newRootCommand(cli.NewTool("regex-copier")))
}
