// Package vpn checks the WireGuard setup and switches between the local and
// the global tunnel.
package vpn

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AnyTimeTraveler/dotscripts/errors"
	"github.com/AnyTimeTraveler/dotscripts/exec"
)

// Config describes the network being checked.
type Config struct {
	// VPNAddr answers pings only through the tunnel.
	VPNAddr string

	// NASAddr is the storage host reachable at home or through the tunnel.
	NASAddr string

	// HomeSubnet is matched against the output of `ip a`.
	HomeSubnet string

	LocalProfile  string
	GlobalProfile string

	// PingTimeout is rounded up to whole seconds for ping -w.
	PingTimeout time.Duration
}

// DefaultConfig returns the settings for the home network.
func DefaultConfig() Config {
	return Config{
		VPNAddr:       "172.16.0.1",
		NASAddr:       "172.16.0.1",
		HomeSubnet:    "192.168.1.",
		LocalProfile:  "wg_local",
		GlobalProfile: "wg_global",
		PingTimeout:   time.Second,
	}
}

// ServiceName returns the systemd unit of a WireGuard profile.
func ServiceName(profile string) string {
	return fmt.Sprintf("wireguard-%s.service", profile)
}

// State is the result of one round of checks.
type State struct {
	// PingTime is the round trip to the VPN address in milliseconds, empty
	// when it did not answer.
	PingTime string

	NASReachable bool
	HomeNetwork  bool
	LocalActive  bool
	GlobalActive bool
}

// Connected reports whether the VPN address answered.
func (s State) Connected() bool {
	return s.PingTime != ""
}

// UseLocalProfile reports whether the local profile fits the current
// network.
func (s State) UseLocalProfile() bool {
	return s.HomeNetwork && s.NASReachable
}

// Status is the status bar block.
type Status struct {
	State string `json:"state"`
	Text  string `json:"text"`
}

// Status builds the status bar block for s.
func (s State) Status() Status {
	var state string
	switch {
	case s.Connected():
		state = "Good"
	case s.LocalActive || s.GlobalActive:
		state = "Warning"
	default:
		state = "Critical"
	}

	var text strings.Builder
	if s.NASReachable {
		text.WriteString("\uf1eb ")
	} else {
		text.WriteString("\uf059 ")
	}
	if s.HomeNetwork {
		text.WriteString("\uf015 ")
	} else {
		text.WriteString("\uf57d")
	}
	text.WriteString("|")

	switch {
	case s.LocalActive && s.GlobalActive:
		text.WriteString("\uf0ac \uf015 ")
	case s.LocalActive:
		text.WriteString("\uf015 ")
	case s.GlobalActive:
		text.WriteString("\uf0ac ")
	default:
		text.WriteString("\uf00d ")
	}
	text.WriteString("\uf07e ")

	if s.Connected() {
		text.WriteString(s.PingTime + " ms")
	} else {
		text.WriteString("\uf1e6 ")
	}

	return Status{State: state, Text: text.String()}
}

// Render returns the status bar block as a JSON line.
func (s State) Render() (string, error) {
	data, err := json.Marshal(s.Status())
	if err != nil {
		return "", errors.Wrap(err, "Failed to encode status")
	}
	return string(data), nil
}

// Checker runs the checks that make up a State.
type Checker struct {
	Executor exec.Executor
	Config   Config
	Logger   *slog.Logger
}

// Collect runs all checks concurrently. Each check uses its own clone of
// the executor.
func (c *Checker) Collect() (State, error) {
	var (
		state State
		g     errgroup.Group
	)

	g.Go(func() error {
		t, ok, err := c.ping(c.Executor.Clone(), c.Config.VPNAddr)
		if err != nil {
			return errors.Wrap(err, "Failed to get ping time for VPN")
		}
		if ok {
			state.PingTime = t
		}
		return nil
	})
	g.Go(func() error {
		_, ok, err := c.ping(c.Executor.Clone(), c.Config.NASAddr)
		if err != nil {
			return errors.Wrap(err, "Failed to get ping time for NAS")
		}
		state.NASReachable = ok
		return nil
	})
	g.Go(func() error {
		out, err := exec.RunSimple(c.Executor.Clone(), "ip a")
		if err != nil {
			return errors.Wrap(err, "Failed to check for home IP range")
		}
		state.HomeNetwork = strings.Contains(out, c.Config.HomeSubnet)
		return nil
	})
	g.Go(func() error {
		active, err := c.interfaceActive(c.Executor.Clone(), c.Config.LocalProfile)
		if err != nil {
			return errors.Wrap(err, "Failed to check if local wireguard service is active")
		}
		state.LocalActive = active
		return nil
	})
	g.Go(func() error {
		active, err := c.interfaceActive(c.Executor.Clone(), c.Config.GlobalProfile)
		if err != nil {
			return errors.Wrap(err, "Failed to check if global wireguard service is active")
		}
		state.GlobalActive = active
		return nil
	})

	if err := g.Wait(); err != nil {
		return State{}, err
	}

	c.logger().Debug("checks finished",
		"ping", state.PingTime,
		"nas", state.NASReachable,
		"home", state.HomeNetwork,
		"local", state.LocalActive,
		"global", state.GlobalActive,
	)
	return state, nil
}

// ping returns the round trip time to target and whether it answered.
func (c *Checker) ping(e exec.Executor, target string) (string, bool, error) {
	result, err := e.RunWithExitStatus("ping", "-c", "1", "-w", c.timeoutSeconds(), target)
	if err != nil {
		return "", false, err
	}
	if !result.Success() {
		return "", false, nil
	}

	t, err := ParsePingTime(result.Output)
	if err != nil {
		return "", false, err
	}
	return t, true, nil
}

func (c *Checker) interfaceActive(e exec.Executor, profile string) (bool, error) {
	out, err := exec.RunSimple(e, "sudo wg")
	if err != nil {
		return false, err
	}
	return strings.Contains(out, profile), nil
}

func (c *Checker) timeoutSeconds() string {
	secs := int((c.Config.PingTimeout + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return fmt.Sprint(secs)
}

func (c *Checker) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// ParsePingTime extracts the value of "time=<TIME> ms" from the output of a
// successful ping.
func ParsePingTime(output string) (string, error) {
	_, rest, found := strings.Cut(output, "time=")
	if !found {
		return "", errors.Newf("Expected output of successful ping command to contain string 'time='. Instead got:\n%s", output)
	}

	t, _, found := strings.Cut(rest, " ")
	if !found {
		return "", errors.Newf("Expected output of successful ping command to contain 'time=<TIME> ms'. Instead got:\n%s", output)
	}
	return t, nil
}
