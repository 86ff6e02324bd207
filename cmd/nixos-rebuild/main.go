// Command nixos-rebuild edits, formats, rebuilds and commits the NixOS
// configuration.
package main

import (
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AnyTimeTraveler/dotscripts/errors"
	"github.com/AnyTimeTraveler/dotscripts/internal/cli"
	"github.com/AnyTimeTraveler/dotscripts/internal/nixos"
)

// optionsFrom reads the rebuild options from flags, environment and config
// file.
func optionsFrom(v *viper.Viper) nixos.Options {
	return nixos.Options{
		Editor:        v.GetString("editor"),
		EditorArgs:    v.GetString("editor-args"),
		EditorProcess: v.GetString("editor-process"),
		Dir:           v.GetString("nix-dir"),
		OptimizeStore: v.GetBool("optimize-store"),
		DryRun:        v.GetBool("dry-run"),
		Boot:          v.GetBool("boot"),
		Debug:         v.GetBool("debug"),
	}
}

func newRootCommand(t *cli.Tool) *cobra.Command {
	defaults := nixos.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "nixos-rebuild",
		Short: "Edit, rebuild and commit the NixOS configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts := optionsFrom(t.Config)

			if err := os.Chdir(opts.Dir); err != nil {
				return errors.Wrap(err, "Failed to cd to nix config directory")
			}

			r := nixos.New(t.Executor, osfs.New(opts.Dir), opts)
			r.Logger = t.Logger
			r.Watcher.Logger = t.Logger
			r.Stdin = t.Stdin
			r.Stdout = t.Stdout
			return r.Run()
		},
	}

	f := cmd.Flags()
	f.String("editor", defaults.Editor, "editor to open the configuration with")
	f.String("editor-args", defaults.EditorArgs, "arguments passed to the editor, split on whitespace")
	f.String("editor-process", defaults.EditorProcess, "pgrep pattern of the editor process to wait for")
	f.String("nix-dir", defaults.Dir, "NixOS configuration repository")
	f.BoolP("optimize-store", "o", false, "deduplicate the nix store afterwards")
	f.Bool("dry-run", false, "build without activating or deleting anything")
	f.Bool("boot", false, "activate the new configuration on next boot")
	f.Bool("debug", false, "show every line of the build output")

	t.Bind(cmd)
	return cmd
}

func main() {
	cli.Main(newRootCommand(cli.NewTool("nixos-rebuild")))
}
