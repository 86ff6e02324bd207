// Package fileops copies files over a billy.Filesystem: plain copies with
// retries, directory sweeps filtered by acceptance rules, and regex driven
// copy plans.
package fileops

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/go-git/go-billy/v5"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

const (
	// DefaultAttempts is how often a copy is tried before giving up.
	DefaultAttempts = 3

	// DefaultDelay is the pause between two attempts.
	DefaultDelay = 500 * time.Millisecond
)

// Copier copies files within one filesystem.
type Copier struct {
	FS       billy.Filesystem
	Attempts int
	Delay    time.Duration
	Logger   *slog.Logger

	// Warnings receives the error chain of every failed attempt.
	Warnings io.Writer

	// Sleep is called between attempts. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// NewCopier returns a Copier with the default retry policy.
func NewCopier(fsys billy.Filesystem) *Copier {
	return &Copier{
		FS:       fsys,
		Attempts: DefaultAttempts,
		Delay:    DefaultDelay,
		Warnings: os.Stderr,
	}
}

// CopyFile copies src to dst once, keeping the permission bits of src.
// An existing dst is truncated.
func (c *Copier) CopyFile(src, dst string) error {
	info, err := c.FS.Stat(src)
	if err != nil {
		return errors.Wrapf(err, "Could not get metadata of %s", src)
	}

	in, err := c.FS.Open(src)
	if err != nil {
		return errors.Wrapf(err, "Failed to open %s", src)
	}
	defer in.Close()

	out, err := c.FS.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, "Failed to create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, "Failed to write %s", dst)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "Failed to close %s", dst)
	}

	if ch, ok := c.FS.(billy.Change); ok {
		if err := ch.Chmod(dst, info.Mode().Perm()); err != nil {
			return errors.Wrapf(err, "Failed to set permissions of %s", dst)
		}
	}

	return nil
}

// CopyWithRetry copies src to dst, retrying failed attempts.
func (c *Copier) CopyWithRetry(src, dst string) error {
	attempts := c.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := c.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var last error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := c.CopyFile(src, dst)
		if err == nil {
			return nil
		}
		last = errors.Wrap(err, "Error copying file")

		if c.Warnings != nil {
			fmt.Fprintln(c.Warnings, errors.WithCause("Error, retrying in half a second...", last))
		}
		c.logger().Debug("copy attempt failed", "src", src, "attempt", attempt)

		if attempt < attempts {
			sleep(c.Delay)
		}
	}

	return errors.WithCause(fmt.Sprintf("Error copying %q, giving up", src), last)
}

// Rule accepts or rejects a directory entry. A rejection carries a short
// reason for the debug log.
type Rule func(info fs.FileInfo) (reason string, ok bool)

// CopyMatching copies every entry of srcDir accepted by rule into dstDir
// and returns the copied names.
func (c *Copier) CopyMatching(srcDir, dstDir string, rule Rule) ([]string, error) {
	entries, err := c.FS.ReadDir(srcDir)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read directory %s", srcDir)
	}

	var copied []string
	for _, entry := range entries {
		c.logger().Debug("considering", "name", entry.Name())

		if reason, ok := rule(entry); !ok {
			c.logger().Debug("rejected", "name", entry.Name(), "reason", reason)
			continue
		}

		src := path.Join(srcDir, entry.Name())
		dst := path.Join(dstDir, entry.Name())
		c.logger().Info(fmt.Sprintf("Copy %-60s -> %s", src, dst))

		if err := c.CopyWithRetry(src, dst); err != nil {
			return copied, err
		}
		copied = append(copied, entry.Name())
	}

	return copied, nil
}

// Exists reports whether name exists. Errors other than "not found" are
// returned.
func (c *Copier) Exists(name string) (bool, error) {
	_, err := c.FS.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, "Could not get metadata of %s", name)
}

func (c *Copier) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
