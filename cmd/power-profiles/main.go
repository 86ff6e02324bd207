// Command power-profiles shows or changes the power profile for the status
// bar.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnyTimeTraveler/dotscripts/internal/cli"
	"github.com/AnyTimeTraveler/dotscripts/internal/power"
)

func newRootCommand(t *cli.Tool) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "power-profiles [toggle|power-saver|balanced|performance]",
		Short:     "Show or change the power profile",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"toggle", string(power.PowerSaver), string(power.Balanced), string(power.Performance)},
		RunE: func(c *cobra.Command, args []string) error {
			ctl := power.New(t.Executor)

			var (
				profile power.Profile
				err     error
			)
			switch {
			case len(args) == 0:
				profile, err = ctl.Current()
			case args[0] == "toggle":
				profile, err = ctl.Toggle()
			default:
				profile, err = power.Parse(args[0])
				if err == nil {
					err = ctl.Set(profile)
				}
			}
			if err != nil {
				return err
			}

			status, err := power.StatusFor(profile)
			if err != nil {
				return err
			}
			out, err := status.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), out)
			return nil
		},
	}

	t.Bind(cmd)
	return cmd
}

func main() {
	cli.Main(newRootCommand(cli.NewTool("power-profiles")))
}
