package git

import (
	"context"
	"strings"
)

// ResetMode selects what git reset keeps.
type ResetMode string

const (
	// ResetSoft moves HEAD only; changes stay staged.
	ResetSoft ResetMode = "soft"
	// ResetMixed moves HEAD and resets the index; changes stay in the worktree.
	ResetMixed ResetMode = "mixed"
	// ResetHard moves HEAD and discards index and worktree changes.
	ResetHard ResetMode = "hard"
)

// Flag returns the git reset flag, e.g. "--hard".
func (m ResetMode) Flag() string {
	return "--" + string(m)
}

// ResetArgs returns the git arguments resetting to hash in mode.
func ResetArgs(mode ResetMode, hash string) []string {
	return []string{"reset", mode.Flag(), hash}
}

// CommandLine renders git arguments the way a user would type them.
func CommandLine(args []string) string {
	return "git " + strings.Join(args, " ")
}

// Reset runs git reset attached to the terminal.
func (r *Repo) Reset(ctx context.Context, mode ResetMode, hash string) error {
	return r.run.Attached(ctx, r.Path, ResetArgs(mode, hash)...)
}
