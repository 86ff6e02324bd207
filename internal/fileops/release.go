package fileops

import (
	"io/fs"
	"path"
	"strings"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

// RustBinaries accepts the executables cargo leaves in target/release.
func RustBinaries(info fs.FileInfo) (string, bool) {
	switch {
	case !info.Mode().IsRegular():
		return "is not a file", false
	case strings.HasPrefix(info.Name(), "."):
		return "is a dotfile", false
	case strings.HasSuffix(info.Name(), ".d"):
		return "is a .d file", false
	}
	return "", true
}

// WithSuffix accepts regular files whose name ends in suffix.
func WithSuffix(suffix string) Rule {
	return func(info fs.FileInfo) (string, bool) {
		if !info.Mode().IsRegular() {
			return "is not a file", false
		}
		if !strings.HasSuffix(info.Name(), suffix) {
			return "is not a " + suffix + " file", false
		}
		return "", true
	}
}

// Source is one directory of release artefacts.
type Source struct {
	Name string
	Dir  string
	Rule Rule
}

// ReleaseSources returns the artefact directories below root.
func ReleaseSources(root string) []Source {
	return []Source{
		{Name: "Rust", Dir: path.Join(root, "target", "release"), Rule: RustBinaries},
		{Name: "Python", Dir: path.Join(root, "python"), Rule: WithSuffix(".py")},
		{Name: "Shell", Dir: path.Join(root, "shell"), Rule: WithSuffix(".sh")},
	}
}

// Release copies every source's accepted files into dest. The destination
// and every source directory must exist.
func (c *Copier) Release(dest string, sources []Source) error {
	ok, err := c.Exists(dest)
	if err != nil {
		return err
	}
	if _, err := errors.ErrorIfFalseFunc(ok, func() string {
		return "Destination path " + dest + " does not exist"
	}); err != nil {
		return err
	}
	c.logger().Debug("will copy to " + dest)

	for _, src := range sources {
		ok, err := c.Exists(src.Dir)
		if err != nil {
			return err
		}
		if _, err := errors.ErrorIfFalseFunc(ok, func() string {
			return "Source path " + src.Dir + " does not exist"
		}); err != nil {
			return err
		}
		c.logger().Debug("starting", "source", src.Name, "dir", src.Dir)

		if _, err := c.CopyMatching(src.Dir, dest, src.Rule); err != nil {
			return errors.Wrapf(err, "Failed to release %s files", src.Name)
		}
	}

	return nil
}
