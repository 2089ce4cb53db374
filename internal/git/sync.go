package git

import (
	"context"
	"strings"
)

// Upstream returns the upstream-tracking branch of HEAD, e.g. "origin/main".
// ok is false when none is configured.
func (r *Repo) Upstream(ctx context.Context) (string, bool) {
	out, ok := r.run.Output(ctx, r.Path, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")
	if !ok || out == "" {
		return "", false
	}
	return out, true
}

// ShortStatus returns git status -sb output; its first line carries the
// tracking summary, e.g. "## main...origin/main [ahead 1, behind 2]".
func (r *Repo) ShortStatus(ctx context.Context) (string, bool) {
	return r.run.Output(ctx, r.Path, "status", "-sb")
}

// IsDiverged reports whether a git status -sb summary shows the branch
// ahead of or behind its upstream.
func IsDiverged(status string) bool {
	return strings.Contains(status, "[ahead") || strings.Contains(status, "[behind")
}

// ForcePushArgs returns the lease-protected force push arguments. The lease
// makes the push fail if remote/branch moved since it was last fetched.
func ForcePushArgs(remote, branch string) []string {
	return []string{"push", "--force-with-lease", remote, branch}
}

// ForcePushWithLease pushes branch to remote, attached to the terminal.
func (r *Repo) ForcePushWithLease(ctx context.Context, remote, branch string) error {
	return r.run.Attached(ctx, r.Path, ForcePushArgs(remote, branch)...)
}
