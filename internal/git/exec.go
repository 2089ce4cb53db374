package git

import (
	"context"
	"strings"

	"github.com/raphi011/grh/internal/cmd"
	"github.com/raphi011/grh/internal/log"
)

// Runner executes git subcommands in a working directory.
type Runner interface {
	// Output returns trimmed stdout. ok is false when git exits non-zero
	// or cannot be started; the reason is not surfaced.
	Output(ctx context.Context, dir string, args ...string) (out string, ok bool)

	// Run discards stdout. The error carries git's stderr when it failed.
	Run(ctx context.Context, dir string, args ...string) error

	// Attached runs git with the terminal's own stdin/stdout/stderr so the
	// user sees its live output. Failures are returned as errors.
	Attached(ctx context.Context, dir string, args ...string) error
}

// ExecRunner runs the git binary found on PATH.
type ExecRunner struct{}

// Output implements Runner.
func (ExecRunner) Output(ctx context.Context, dir string, args ...string) (string, bool) {
	out, err := cmd.OutputContext(ctx, dir, "git", args...)
	if err != nil {
		log.FromContext(ctx).Debug("git failed", "args", strings.Join(args, " "), "err", err)
		return "", false
	}
	return strings.TrimSpace(string(out)), true
}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, dir, "git", args...)
}

// Attached implements Runner.
func (ExecRunner) Attached(ctx context.Context, dir string, args ...string) error {
	return cmd.AttachedContext(ctx, dir, "git", args...)
}
