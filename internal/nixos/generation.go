package nixos

import (
	"fmt"
	"strings"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

// Generation is the current entry of `nixos-rebuild list-generations`.
type Generation struct {
	// Line is the raw line. It is used as the commit message.
	Line string

	Number string
	Date   string
	NixOS  string
	Kernel string
}

// ParseGeneration finds the current generation in the output of
// `nixos-rebuild list-generations`.
//
// A line looks like:
//
//	142 current  2024-05-01 10:12:44  24.05.20240429.1234567  6.8.8
func ParseGeneration(output string) (*Generation, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "current") {
			continue
		}

		g := &Generation{Line: line}
		if f := strings.Fields(line); len(f) >= 6 {
			g.Number, g.Date, g.NixOS, g.Kernel = f[0], f[2], f[4], f[5]
		}
		return g, nil
	}
	return nil, errors.New("No current generation found")
}

// Summary describes g for humans.
func (g *Generation) Summary() string {
	if g.Number == "" {
		return g.Line
	}
	return fmt.Sprintf("%s (%s) Nix: %s Kernel: %s", g.Number, g.Date, g.NixOS, g.Kernel)
}
