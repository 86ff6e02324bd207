// Command day-countdown prints the number of days until the date stored in
// ~/.data/day_countdown_target_date.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/AnyTimeTraveler/dotscripts/errors"
	"github.com/AnyTimeTraveler/dotscripts/internal/cli"
	"github.com/AnyTimeTraveler/dotscripts/internal/countdown"
)

func newRootCommand(t *cli.Tool, now func() time.Time) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day-countdown",
		Short: "Print the days left until the target date",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			path := t.Config.GetString("file")
			if path == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return errors.Wrap(err, "Could not get home dir")
				}
				path = countdown.TargetPath(home)
			}
			path, err := filepath.Abs(path)
			if err != nil {
				return errors.Wrapf(err, "Invalid path %s", path)
			}

			target, err := countdown.ReadTarget(osfs.New("/"), path)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), countdown.Message(countdown.DaysUntil(target, now())))
			return nil
		},
	}

	cmd.Flags().String("file", "", "file holding the target date (default is ~/.data/day_countdown_target_date)")

	t.Bind(cmd)
	return cmd
}

func main() {
	cli.Main(newRootCommand(cli.NewTool("day-countdown"), time.Now))
}
