package vpn

import (
	"github.com/AnyTimeTraveler/dotscripts/errors"
	"github.com/AnyTimeTraveler/dotscripts/exec"
)

// Controller starts and stops the WireGuard services with systemctl.
type Controller struct {
	sudo   *exec.CommandWrapper
	config Config
}

// NewController returns a Controller running `sudo systemctl` through e.
func NewController(e exec.Executor, config Config) *Controller {
	return &Controller{
		sudo:   exec.NewWrapper(e, "sudo"),
		config: config,
	}
}

func (c *Controller) systemctl(action, profile string) error {
	if _, err := c.sudo.Run("systemctl", action, ServiceName(profile)); err != nil {
		return errors.Wrapf(err, "Failed to %s %s", action, ServiceName(profile))
	}
	return nil
}

// Stop stops both tunnels.
func (c *Controller) Stop() error {
	if err := c.systemctl("stop", c.config.LocalProfile); err != nil {
		return err
	}
	return c.systemctl("stop", c.config.GlobalProfile)
}

// Restart restarts the local or the global tunnel.
func (c *Controller) Restart(local bool) error {
	if local {
		return c.systemctl("restart", c.config.LocalProfile)
	}
	return c.systemctl("restart", c.config.GlobalProfile)
}

// Switch stops both tunnels and starts the chosen one.
func (c *Controller) Switch(local bool) error {
	if err := c.Stop(); err != nil {
		return err
	}
	return c.Restart(local)
}

// Toggle stops a working connection or starts the tunnel that fits the
// current network.
func (c *Controller) Toggle(state State) error {
	if state.Connected() {
		return c.Stop()
	}
	return c.Restart(state.UseLocalProfile())
}

// Apply runs a named action. Unknown actions fail.
func (c *Controller) Apply(action string, state State) error {
	switch action {
	case "toggle":
		return c.Toggle(state)
	case "start":
		return c.Restart(state.UseLocalProfile())
	case "stop":
		return c.Stop()
	case "global":
		return c.Switch(false)
	case "local":
		return c.Switch(true)
	default:
		return errors.Newf("Unknown argument '%s'", action)
	}
}
