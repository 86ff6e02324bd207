package sway

import (
	"regexp"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

// Filter identifies a monitor by regular expressions over the fields sway
// reports. Empty fields match anything. More fields avoid collisions
// between monitors of the same model.
type Filter struct {
	Name   string `yaml:"name" toml:"name"`
	Make   string `yaml:"make" toml:"make"`
	Model  string `yaml:"model" toml:"model"`
	Serial string `yaml:"serial" toml:"serial"`
}

// Matcher is a compiled Filter.
type Matcher struct {
	name, make, model, serial *regexp.Regexp
}

// Compile compiles the expressions of f.
func (f Filter) Compile() (*Matcher, error) {
	if f == (Filter{}) {
		return nil, errors.New("Monitor filter needs at least one field")
	}

	var m Matcher
	for _, field := range []struct {
		label string
		expr  string
		dst   **regexp.Regexp
	}{
		{"name", f.Name, &m.name},
		{"make", f.Make, &m.make},
		{"model", f.Model, &m.model},
		{"serial", f.Serial, &m.serial},
	} {
		if field.expr == "" {
			continue
		}
		re, err := regexp.Compile(field.expr)
		if err != nil {
			return nil, errors.Wrapf(err, "Invalid %s expression '%s'", field.label, field.expr)
		}
		*field.dst = re
	}

	return &m, nil
}

// Matches reports whether o satisfies every expression.
func (m *Matcher) Matches(o Output) bool {
	for _, check := range []struct {
		re    *regexp.Regexp
		value string
	}{
		{m.name, o.Name},
		{m.make, o.Make},
		{m.model, o.Model},
		{m.serial, o.Serial},
	} {
		if check.re != nil && !check.re.MatchString(check.value) {
			return false
		}
	}
	return true
}

// Find returns the index of the first output m matches.
func (m *Matcher) Find(outputs []Output) (int, bool) {
	for i, o := range outputs {
		if m.Matches(o) {
			return i, true
		}
	}
	return -1, false
}
