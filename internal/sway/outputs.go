// Package sway arranges the outputs of a sway session according to
// declarative layouts.
package sway

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/AnyTimeTraveler/dotscripts/errors"
	"github.com/AnyTimeTraveler/dotscripts/exec"
)

// Mode is a video mode an output supports. Refresh is in millihertz.
type Mode struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	Refresh int `json:"refresh"`
}

// Output is one entry of `swaymsg -t get_outputs`.
type Output struct {
	Name   string `json:"name"`
	Make   string `json:"make"`
	Model  string `json:"model"`
	Serial string `json:"serial"`
	Modes  []Mode `json:"modes"`
}

// PreferredMode is the first mode sway reports, or the zero Mode.
func (o Output) PreferredMode() Mode {
	if len(o.Modes) == 0 {
		return Mode{}
	}
	return o.Modes[0]
}

// Width of the preferred mode.
func (o Output) Width() int { return o.PreferredMode().Width }

// Height of the preferred mode.
func (o Output) Height() int { return o.PreferredMode().Height }

// RefreshHz formats the preferred refresh rate in hertz without trailing
// zeros, e.g. "59.951".
func (o Output) RefreshHz() string {
	return strconv.FormatFloat(float64(o.PreferredMode().Refresh)/1000, 'f', -1, 64)
}

// Usable drops outputs that report no modes, such as headless or virtual
// outputs. They cannot be given a mode command.
func Usable(outputs []Output) []Output {
	usable := make([]Output, 0, len(outputs))
	for _, o := range outputs {
		if len(o.Modes) > 0 {
			usable = append(usable, o)
		}
	}
	return usable
}

// ParseOutputs decodes the JSON printed by `swaymsg -t get_outputs`.
func ParseOutputs(data string) ([]Output, error) {
	var outputs []Output
	if err := json.Unmarshal([]byte(data), &outputs); err != nil {
		return nil, errors.Wrap(err, "Failed to parse swaymsg outputs JSON")
	}
	return outputs, nil
}

// commandResult is one element of the reply to a swaymsg command.
type commandResult struct {
	Success *bool  `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Client talks to sway through swaymsg.
type Client struct {
	swaymsg *exec.CommandWrapper
}

// NewClient returns a Client running swaymsg through e.
func NewClient(e exec.Executor) *Client {
	return &Client{swaymsg: exec.NewWrapper(e, "swaymsg")}
}

// Outputs returns the outputs currently known to sway.
func (c *Client) Outputs() ([]Output, error) {
	out, err := c.swaymsg.Run("-t", "get_outputs")
	if err != nil {
		return nil, err
	}
	return ParseOutputs(out)
}

// Run sends command to sway and checks that every part of it succeeded.
func (c *Client) Run(command string) error {
	result, err := c.swaymsg.RunWithExitStatus("--", command)
	if err != nil {
		return err
	}
	if !result.Success() {
		return errors.WithCause(
			"Running the swaymsg command to apply the configuration failed",
			errors.New(strings.TrimSpace(result.Output)),
		)
	}

	var replies []commandResult
	if err := json.Unmarshal([]byte(result.Output), &replies); err != nil {
		return errors.Wrap(err, "Expected a JSON array of command results")
	}

	for i, reply := range replies {
		if reply.Success == nil {
			return errors.Newf("Expected success in command result %d", i)
		}
		if !*reply.Success {
			return errors.Newf("Expected success to be true in command result %d: %s", i, reply.Error)
		}
	}

	return nil
}
