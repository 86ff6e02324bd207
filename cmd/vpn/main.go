// Command vpn reports and controls the WireGuard tunnels for the status bar.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AnyTimeTraveler/dotscripts/internal/cli"
	"github.com/AnyTimeTraveler/dotscripts/internal/vpn"
)

func configFrom(v *viper.Viper) vpn.Config {
	return vpn.Config{
		VPNAddr:       v.GetString("vpn-addr"),
		NASAddr:       v.GetString("nas-addr"),
		HomeSubnet:    v.GetString("home-subnet"),
		LocalProfile:  v.GetString("local-profile"),
		GlobalProfile: v.GetString("global-profile"),
		PingTimeout:   v.GetDuration("ping-timeout"),
	}
}

func newRootCommand(t *cli.Tool) *cobra.Command {
	defaults := vpn.DefaultConfig()

	cmd := &cobra.Command{
		Use:       "vpn [status|toggle|start|stop|global|local]",
		Short:     "Show or change the VPN state",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"status", "toggle", "start", "stop", "global", "local"},
		RunE: func(c *cobra.Command, args []string) error {
			config := configFrom(t.Config)

			checker := &vpn.Checker{Executor: t.Executor, Config: config, Logger: t.Logger}
			state, err := checker.Collect()
			if err != nil {
				return err
			}

			action := "status"
			if len(args) == 1 {
				action = args[0]
			}
			if action != "status" {
				return vpn.NewController(t.Executor, config).Apply(action, state)
			}

			out, err := state.Render()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), out)
			return nil
		},
	}

	f := cmd.Flags()
	f.String("vpn-addr", defaults.VPNAddr, "address only reachable through the tunnel")
	f.String("nas-addr", defaults.NASAddr, "address of the NAS")
	f.String("home-subnet", defaults.HomeSubnet, "address prefix of the home network")
	f.String("local-profile", defaults.LocalProfile, "WireGuard profile used at home")
	f.String("global-profile", defaults.GlobalProfile, "WireGuard profile used elsewhere")
	f.Duration("ping-timeout", defaults.PingTimeout, "timeout of a single ping")

	t.Bind(cmd)
	return cmd
}

func main() {
	cli.Main(newRootCommand(cli.NewTool("vpn")))
}
