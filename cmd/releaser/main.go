// Command releaser copies the built scripts of this repository into
// ~/.local/bin.
package main

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/AnyTimeTraveler/dotscripts/errors"
	"github.com/AnyTimeTraveler/dotscripts/internal/cli"
	"github.com/AnyTimeTraveler/dotscripts/internal/fileops"
)

func newRootCommand(t *cli.Tool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "releaser",
		Short: "Install release artefacts into ~/.local/bin",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			root := t.Config.GetString("root")
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return errors.Wrap(err, "Failed to get current directory")
				}
				root = wd
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return errors.Wrapf(err, "Invalid root %s", root)
			}

			dest := t.Config.GetString("dest")
			if dest == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return errors.Wrap(err, "Could not get home dir")
				}
				dest = filepath.Join(home, ".local", "bin")
			}

			c := fileops.NewCopier(osfs.New("/"))
			c.Logger = t.Logger
			c.Warnings = t.Stderr
			return c.Release(dest, fileops.ReleaseSources(root))
		},
	}

	cmd.Flags().String("root", "", "repository root (default is the current directory)")
	cmd.Flags().String("dest", "", "destination directory (default is ~/.local/bin)")

	t.Bind(cmd)
	return cmd
}

func main() {
	cli.Main(newRootCommand(cli.NewTool("releaser")))
}
