package sway

import (
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

// Backgrounds are the wallpaper images used by the automatic layout. Each
// value is passed to sway's bg command and may carry a mode such as "fit".
type Backgrounds struct {
	Single string `yaml:"single" toml:"single"`
	Left   string `yaml:"left" toml:"left"`
	Middle string `yaml:"middle" toml:"middle"`
	Right  string `yaml:"right" toml:"right"`
}

// Placement positions one monitor within a layout.
type Placement struct {
	Disable bool `yaml:"disable" toml:"disable"`

	// X and Y are absolute positions. They override RightOf and Below.
	X *int `yaml:"x" toml:"x"`
	Y *int `yaml:"y" toml:"y"`

	// RightOf and Below name another monitor of the same layout.
	RightOf string `yaml:"right_of" toml:"right_of"`
	Below   string `yaml:"below" toml:"below"`

	Background string `yaml:"background" toml:"background"`
}

// Layout is used when all of its monitors are connected.
type Layout struct {
	Name    string               `yaml:"name" toml:"name"`
	Outputs map[string]Placement `yaml:"outputs" toml:"outputs"`
}

// Config is the layout file.
type Config struct {
	BackgroundDir string            `yaml:"background_dir" toml:"background_dir"`
	Backgrounds   Backgrounds       `yaml:"backgrounds" toml:"backgrounds"`
	Monitors      map[string]Filter `yaml:"monitors" toml:"monitors"`
	Layouts       []Layout          `yaml:"layouts" toml:"layouts"`
}

// Load reads a layout file. Files ending in .toml are decoded as TOML,
// everything else as YAML.
func Load(fsys billy.Filesystem, name string) (*Config, error) {
	data, err := util.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read layout file %s", name)
	}

	var cfg Config
	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "Failed to parse layout file %s", name)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "Failed to parse layout file %s", name)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "Invalid layout file %s", name)
	}
	return &cfg, nil
}

// Validate checks that every layout only references defined monitors.
func (c *Config) Validate() error {
	for _, l := range c.Layouts {
		if len(l.Outputs) == 0 {
			return errors.Newf("Layout '%s' has no outputs", l.Name)
		}
		for _, name := range sortedKeys(l.Outputs) {
			p := l.Outputs[name]
			if _, ok := c.Monitors[name]; !ok {
				return errors.Newf("Layout '%s' uses undefined monitor '%s'", l.Name, name)
			}
			for _, ref := range []string{p.RightOf, p.Below} {
				if ref == "" {
					continue
				}
				if _, ok := l.Outputs[ref]; !ok {
					return errors.Newf("Layout '%s' places '%s' next to '%s', which is not part of the layout", l.Name, name, ref)
				}
			}
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
