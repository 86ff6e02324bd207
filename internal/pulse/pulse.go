// Package pulse rotates the default PulseAudio sink or source with pactl.
package pulse

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/AnyTimeTraveler/dotscripts/errors"
	"github.com/AnyTimeTraveler/dotscripts/exec"
)

// Kind selects which kind of device is rotated.
type Kind struct {
	// Name is the singular pactl name, "sink" or "source".
	Name string

	// Exclude drops devices whose list line contains the substring.
	Exclude string

	// Retry moves on to the following device when the server did not accept
	// the new default.
	Retry bool
}

var (
	// Sinks are output devices.
	Sinks = Kind{Name: "sink"}

	// Sources are input devices. Monitors of sinks are skipped and a device
	// the server refuses is passed over.
	Sources = Kind{Name: "source", Exclude: ".monitor", Retry: true}
)

func (k Kind) plural() string {
	return k.Name + "s"
}

// Client talks to the PulseAudio server through pactl.
type Client struct {
	pactl  *exec.CommandWrapper
	logger *slog.Logger
}

// New returns a Client running pactl through e.
func New(e exec.Executor, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		pactl:  exec.NewWrapper(e, "pactl"),
		logger: logger,
	}
}

// List returns the sorted device names of kind k.
func (c *Client) List(k Kind) ([]string, error) {
	out, err := c.pactl.Run("list", "short", k.plural())
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to list %s", k.plural())
	}

	names := ParseShortList(out, k.Exclude)
	c.logger.Info("available devices", "kind", k.Name, "devices", names)
	return names, nil
}

// Default returns the current default device of kind k.
func (c *Client) Default(k Kind) (string, error) {
	out, err := c.pactl.Run("get-default-" + k.Name)
	if err != nil {
		return "", errors.Wrapf(err, "Failed to get default %s", k.Name)
	}

	current := strings.TrimSpace(out)
	c.logger.Info("current device", "kind", k.Name, "device", current)
	return current, nil
}

// SetDefault makes name the default device of kind k.
func (c *Client) SetDefault(k Kind, name string) error {
	if _, err := c.pactl.Run("set-default-"+k.Name, name); err != nil {
		return errors.Wrapf(err, "Failed to set default %s to '%s'", k.Name, name)
	}
	return nil
}

// Rotate switches the default device of kind k to the one after the
// current one and returns the new default.
func (c *Client) Rotate(k Kind) (string, error) {
	all, err := c.List(k)
	if err != nil {
		return "", err
	}

	current, err := c.Default(k)
	if err != nil {
		return "", err
	}

	next, err := Next(all, current)
	if err != nil {
		return "", errors.Wrapf(err, "No %s found!", k.plural())
	}

	// Every device is tried at most once.
	for attempt := 0; attempt < len(all); attempt++ {
		c.logger.Info("switching device", "kind", k.Name, "device", next)
		if err := c.SetDefault(k, next); err != nil {
			return "", err
		}

		actual, err := c.Default(k)
		if err != nil {
			return "", err
		}
		if actual == next || !k.Retry {
			return actual, nil
		}

		c.logger.Warn("setting device failed", "kind", k.Name, "device", next)
		next, _ = Next(all, next)
	}

	return "", errors.Newf("None of the %d %s was accepted as default", len(all), k.plural())
}

// Next returns the entry following current, wrapping around to the first.
// An unknown current entry also selects the first one.
func Next(all []string, current string) (string, error) {
	if len(all) == 0 {
		return "", errors.New("Device list is empty")
	}

	for i, name := range all {
		if name == current && i+1 < len(all) {
			return all[i+1], nil
		}
	}
	return all[0], nil
}

// ParseShortList extracts the device names from `pactl list short` output,
// skipping lines containing exclude when it is not empty.
func ParseShortList(out, exclude string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if exclude != "" && strings.Contains(line, exclude) {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 || fields[1] == "" {
			continue
		}
		names = append(names, fields[1])
	}

	sort.Strings(names)
	return names
}
