// Package power reads and switches the power-profiles-daemon profile.
package power

import (
	"encoding/json"
	"strings"

	"github.com/AnyTimeTraveler/dotscripts/errors"
	"github.com/AnyTimeTraveler/dotscripts/exec"
)

// Profile is a power-profiles-daemon profile name.
type Profile string

const (
	PowerSaver  Profile = "power-saver"
	Balanced    Profile = "balanced"
	Performance Profile = "performance"
)

// Profiles lists the profiles in toggle order.
var Profiles = []Profile{PowerSaver, Balanced, Performance}

// Parse validates name.
func Parse(name string) (Profile, error) {
	for _, p := range Profiles {
		if string(p) == name {
			return p, nil
		}
	}
	return "", errors.Newf("Got unknown power setting: %s", name)
}

// Next returns the profile following p in toggle order.
func (p Profile) Next() (Profile, error) {
	for i, candidate := range Profiles {
		if candidate == p {
			return Profiles[(i+1)%len(Profiles)], nil
		}
	}
	return "", errors.Newf("Got unknown power setting: %s", p)
}

// Status is the status bar block for a profile.
type Status struct {
	State string `json:"state"`
	Text  string `json:"text"`
}

// StatusFor returns the status bar block shown for p.
func StatusFor(p Profile) (Status, error) {
	switch p {
	case Performance:
		return Status{State: "Good", Text: "\uf0ee"}, nil
	case Balanced:
		return Status{State: "Info", Text: "\uf0c2"}, nil
	case PowerSaver:
		return Status{State: "Idle", Text: "\uf0ed"}, nil
	default:
		return Status{}, errors.Newf("Got unknown power setting: %s", p)
	}
}

// JSON renders s as a single line.
func (s Status) JSON() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", errors.Wrap(err, "Failed to encode status")
	}
	return string(data), nil
}

// Controller drives powerprofilesctl.
type Controller struct {
	ctl *exec.CommandWrapper
}

// New returns a Controller running powerprofilesctl through e.
func New(e exec.Executor) *Controller {
	return &Controller{ctl: exec.NewWrapper(e, "powerprofilesctl")}
}

// Current returns the active profile.
func (c *Controller) Current() (Profile, error) {
	out, err := c.ctl.Run("get")
	if err != nil {
		return "", errors.Wrap(err, "Failed to get current power profile")
	}
	return Parse(strings.TrimSpace(out))
}

// Set activates p.
func (c *Controller) Set(p Profile) error {
	if _, err := c.ctl.Run("set", string(p)); err != nil {
		return errors.Wrapf(err, "Failed to set profile '%s'", p)
	}
	return nil
}

// Toggle activates the profile after the current one and returns it.
func (c *Controller) Toggle() (Profile, error) {
	current, err := c.Current()
	if err != nil {
		return "", err
	}

	next, err := current.Next()
	if err != nil {
		return "", err
	}

	if err := c.Set(next); err != nil {
		return "", err
	}
	return next, nil
}
