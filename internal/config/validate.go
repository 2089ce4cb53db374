package config

import (
	"fmt"
	"strings"
)

// Validate checks value ranges and formats.
// All errors wrap ErrInvalid.
func (c Config) Validate() error {
	if c.Log.MaxCount < 1 || c.Log.MaxCount > MaxMaxCount {
		return fmt.Errorf("%w: log.max_count %d: must be between 1 and %d", ErrInvalid, c.Log.MaxCount, MaxMaxCount)
	}
	if c.Push.Remote == "" {
		return fmt.Errorf("%w: push.remote must not be empty", ErrInvalid)
	}
	if strings.ContainsAny(c.Push.Remote, " \t\n") {
		return fmt.Errorf("%w: push.remote %q must not contain whitespace", ErrInvalid, c.Push.Remote)
	}
	for i, name := range c.Scan.SkipDirs {
		if err := validateDirName(name); err != nil {
			return fmt.Errorf("%w: scan.skip_dirs[%d]: %v", ErrInvalid, i, err)
		}
	}
	return nil
}

// validateDirName accepts a single path element.
func validateDirName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%q must be a directory name, not a path", name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%q is not a directory name", name)
	}
	return nil
}
