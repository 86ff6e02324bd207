package sway

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

// Setting is the configuration of one output.
type Setting struct {
	Output     Output
	Enabled    bool
	X, Y       int
	Background string
}

// Setup configures every connected output. Settings follow the order in
// which sway reported the outputs.
type Setup struct {
	Name     string
	Settings []Setting
}

// FallbackName names the setup used when no layout applies.
const FallbackName = "Fallback"

// Detect maps every defined monitor that is connected to the index of its
// output.
func (c *Config) Detect(outputs []Output) (map[string]int, error) {
	found := make(map[string]int)
	for _, name := range sortedKeys(c.Monitors) {
		m, err := c.Monitors[name].Compile()
		if err != nil {
			return nil, errors.Wrapf(err, "Invalid monitor '%s'", name)
		}
		if i, ok := m.Find(outputs); ok {
			found[name] = i
		}
	}
	return found, nil
}

// Choose returns the setup of the first layout whose monitors are all
// connected, or the fallback setup.
func (c *Config) Choose(outputs []Output) (*Setup, error) {
	found, err := c.Detect(outputs)
	if err != nil {
		return nil, err
	}

	for _, l := range c.Layouts {
		if !complete(l, found) {
			continue
		}
		return c.build(l, outputs, found)
	}

	return c.Fallback(outputs), nil
}

func complete(l Layout, found map[string]int) bool {
	for name := range l.Outputs {
		if _, ok := found[name]; !ok {
			return false
		}
	}
	return true
}

func (c *Config) baseSettings(outputs []Output) []Setting {
	settings := make([]Setting, len(outputs))
	for i, o := range outputs {
		settings[i] = Setting{Output: o, Enabled: true, Background: c.Backgrounds.Single}
	}
	return settings
}

func (c *Config) build(l Layout, outputs []Output, found map[string]int) (*Setup, error) {
	s := &Setup{Name: l.Name, Settings: c.baseSettings(outputs)}

	placed := make(map[string]bool)
	visiting := make(map[string]bool)

	var place func(name string) error
	place = func(name string) error {
		if placed[name] {
			return nil
		}
		if visiting[name] {
			return errors.Newf("Layout '%s' places '%s' relative to itself", l.Name, name)
		}
		visiting[name] = true

		p := l.Outputs[name]
		set := &s.Settings[found[name]]

		if p.RightOf != "" {
			if err := place(p.RightOf); err != nil {
				return err
			}
			ref := s.Settings[found[p.RightOf]]
			set.X = ref.X + ref.Output.Width()
			set.Y = ref.Y
		}
		if p.Below != "" {
			if err := place(p.Below); err != nil {
				return err
			}
			ref := s.Settings[found[p.Below]]
			if p.RightOf == "" {
				set.X = ref.X
			}
			set.Y = ref.Y + ref.Output.Height()
		}
		if p.X != nil {
			set.X = *p.X
		}
		if p.Y != nil {
			set.Y = *p.Y
		}
		if p.Disable {
			set.Enabled = false
		}
		if p.Background != "" {
			set.Background = p.Background
		}

		placed[name] = true
		return nil
	}

	for _, name := range sortedKeys(l.Outputs) {
		if err := place(name); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Fallback places all outputs left to right.
func (c *Config) Fallback(outputs []Output) *Setup {
	s := &Setup{Name: FallbackName, Settings: c.baseSettings(outputs)}

	x := 0
	for i := range s.Settings {
		s.Settings[i].X = x
		s.Settings[i].Background = c.Backgrounds.pick(i, len(outputs))
		x += s.Settings[i].Output.Width()
	}
	return s
}

// pick chooses the wallpaper for output i of n placed side by side.
// An unset position falls back to Single.
func (b Backgrounds) pick(i, n int) string {
	var bg string
	switch {
	case n <= 1:
		bg = b.Single
	case i == 0:
		bg = b.Left
	case i == n-1:
		bg = b.Right
	default:
		bg = b.Middle
	}
	if bg == "" {
		return b.Single
	}
	return bg
}

// Command renders s as a single swaymsg command. Backgrounds are resolved
// relative to bgDir. Outputs without a background keep their wallpaper.
func (s *Setup) Command(bgDir string) string {
	parts := make([]string, 0, len(s.Settings))
	for _, set := range s.Settings {
		name := set.Output.Name
		if !set.Enabled {
			parts = append(parts, fmt.Sprintf("output %q disable", name))
			continue
		}

		part := fmt.Sprintf(
			"output %q mode %dx%d@%sHz pos %d %d transform normal scale 1.0 scale_filter nearest adaptive_sync off dpms on",
			name, set.Output.Width(), set.Output.Height(), set.Output.RefreshHz(), set.X, set.Y,
		)
		if bg := set.Background; bg != "" {
			if bgDir != "" {
				bg = path.Join(bgDir, bg)
			}
			part += " bg " + bg
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

// Arranger applies the layout that fits the connected outputs.
type Arranger struct {
	Client *Client
	Config *Config
	Logger *slog.Logger
}

// Arrange queries sway, chooses a setup and applies it.
func (a *Arranger) Arrange() (*Setup, error) {
	logger := a.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	all, err := a.Client.Outputs()
	if err != nil {
		return nil, errors.Wrap(err, "Failed to get outputs")
	}

	outputs := Usable(all)
	for _, o := range all {
		if len(o.Modes) == 0 {
			logger.Warn("skipping output without modes", "output", o.Name)
		}
	}
	if len(outputs) == 0 {
		return nil, errors.New("No output with a usable mode found")
	}

	found, err := a.Config.Detect(outputs)
	if err != nil {
		return nil, err
	}
	for _, name := range sortedKeys(a.Config.Monitors) {
		_, ok := found[name]
		logger.Info("monitor", "name", name, "detected", ok)
	}

	setup, err := a.Config.Choose(outputs)
	if err != nil {
		return nil, err
	}
	logger.Info("choosing setup", "setup", setup.Name)

	command := setup.Command(a.Config.BackgroundDir)
	logger.Debug("running", "command", command)

	if err := a.Client.Run(command); err != nil {
		return nil, errors.Wrap(err, "Error applying new monitor configuration")
	}
	return setup, nil
}
