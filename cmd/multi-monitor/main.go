// Command multi-monitor arranges the connected outputs in sway according to
// a layout file.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/AnyTimeTraveler/dotscripts/errors"
	"github.com/AnyTimeTraveler/dotscripts/internal/cli"
	"github.com/AnyTimeTraveler/dotscripts/internal/sway"
)

const layoutFile = "multi-monitor-layouts.yaml"

func newRootCommand(t *cli.Tool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multi-monitor",
		Short: "Apply the sway output layout matching the connected monitors",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			name := t.Config.GetString("layout")
			if name == "" {
				dir, err := cli.ConfigDir()
				if err != nil {
					return err
				}
				name = filepath.Join(dir, layoutFile)
			}
			name, err := filepath.Abs(name)
			if err != nil {
				return errors.Wrapf(err, "Invalid layout path %s", name)
			}

			config, err := sway.Load(osfs.New("/"), name)
			if err != nil {
				return err
			}

			a := &sway.Arranger{Client: sway.NewClient(t.Executor), Config: config, Logger: t.Logger}
			setup, err := a.Arrange()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), cli.Success.Render("Applied "+setup.Name))
			return nil
		},
	}

	cmd.Flags().String("layout", "", "layout file, YAML or TOML (default is $XDG_CONFIG_HOME/dotscripts/"+layoutFile+")")

	t.Bind(cmd)
	return cmd
}

func main() {
	cli.Main(newRootCommand(cli.NewTool("multi-monitor")))
}
