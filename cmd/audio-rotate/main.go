// Command audio-rotate switches the PulseAudio default sink or source to
// the next device.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnyTimeTraveler/dotscripts/internal/cli"
	"github.com/AnyTimeTraveler/dotscripts/internal/pulse"
)

func newRootCommand(t *cli.Tool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audio-rotate",
		Short: "Rotate the default audio device",
	}

	for _, kind := range []pulse.Kind{pulse.Sinks, pulse.Sources} {
		cmd.AddCommand(&cobra.Command{
			Use:   kind.Name,
			Short: fmt.Sprintf("Switch to the next %s", kind.Name),
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				device, err := pulse.New(t.Executor, t.Logger).Rotate(kind)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), device)
				return nil
			},
		})
	}

	t.Bind(cmd)
	return cmd
}

func main() {
	cli.Main(newRootCommand(cli.NewTool("audio-rotate")))
}
