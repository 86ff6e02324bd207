package exec

import "os"

// settings is one layer of execution settings.
type settings struct {
	env           map[string]string
	dir           string
	disableColors bool
}

// config holds the configuration for command execution.
// It distinguishes between global settings (set at creation time) and local
// settings (set per-execution). Local settings are cleared after every run.
type config struct {
	global settings

	localEnv           map[string]string
	localDir           string
	localDisableColors *bool
}

// colorDisablingEnv is merged into the environment when colors are disabled.
var colorDisablingEnv = map[string]string{
	"NO_COLOR":       "1",
	"TERM":           "dumb",
	"CLICOLOR":       "0",
	"CLICOLOR_FORCE": "0",
	"FORCE_COLOR":    "0",
}

func newConfig() *config {
	return &config{
		global:   settings{env: make(map[string]string)},
		localEnv: make(map[string]string),
	}
}

// clone creates a deep copy of the configuration.
func (c *config) clone() *config {
	clone := newConfig()
	clone.global.dir = c.global.dir
	clone.global.disableColors = c.global.disableColors
	clone.localDir = c.localDir

	for k, v := range c.global.env {
		clone.global.env[k] = v
	}
	for k, v := range c.localEnv {
		clone.localEnv[k] = v
	}
	if c.localDisableColors != nil {
		val := *c.localDisableColors
		clone.localDisableColors = &val
	}

	return clone
}

// effective merges both layers. Local settings override global settings.
func (c *config) effective() settings {
	s := settings{
		env:           make(map[string]string, len(c.global.env)+len(c.localEnv)),
		dir:           c.global.dir,
		disableColors: c.global.disableColors,
	}

	for k, v := range c.global.env {
		s.env[k] = v
	}
	for k, v := range c.localEnv {
		s.env[k] = v
	}
	if c.localDir != "" {
		s.dir = c.localDir
	}
	if c.localDisableColors != nil {
		s.disableColors = *c.localDisableColors
	}
	if s.disableColors {
		for k, v := range colorDisablingEnv {
			s.env[k] = v
		}
	}

	return s
}

// environ returns the environment for the child process: the parent's
// environment with the configured variables appended. Later entries win.
// A nil result makes the child inherit the parent's environment unchanged.
func (s settings) environ() []string {
	if len(s.env) == 0 {
		return nil
	}

	env := os.Environ()
	for k, v := range s.env {
		env = append(env, k+"="+v)
	}
	return env
}

// resetLocal resets all local settings.
func (c *config) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localDir = ""
	c.localDisableColors = nil
}
