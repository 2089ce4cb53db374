package git

import (
	"context"
	"strings"
)

// Repo runs git commands with a repository as working directory.
type Repo struct {
	Path string
	run  Runner
}

// NewRepo returns a Repo for path. A nil runner uses ExecRunner.
func NewRepo(path string, run Runner) *Repo {
	if run == nil {
		run = ExecRunner{}
	}
	return &Repo{Path: path, run: run}
}

// Branches lists local and remote-tracking branches (git branch -a),
// normalized by ParseBranches.
func (r *Repo) Branches(ctx context.Context) ([]string, error) {
	out, ok := r.run.Output(ctx, r.Path, "branch", "-a")
	if !ok || out == "" {
		return nil, ErrBranchesUnavailable
	}
	branches := ParseBranches(out)
	if len(branches) == 0 {
		return nil, ErrNoBranches
	}
	return branches, nil
}

// ParseBranches turns git branch -a output into branch names.
// Lines mentioning HEAD (symbolic refs, detached state) are dropped, then
// the "* " current marker and the "remotes/" prefix are stripped, so
// "remotes/origin/feature" becomes "origin/feature".
func ParseBranches(out string) []string {
	var branches []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "HEAD") {
			continue
		}
		line = strings.TrimPrefix(line, "* ")
		line = strings.TrimPrefix(line, "remotes/")
		branches = append(branches, line)
	}
	return branches
}

// DetachedHead is what CurrentBranch reports when HEAD is not on a branch.
const DetachedHead = "HEAD"

// CurrentBranch returns the abbreviated name of HEAD (DetachedHead when detached).
func (r *Repo) CurrentBranch(ctx context.Context) (string, bool) {
	return r.run.Output(ctx, r.Path, "rev-parse", "--abbrev-ref", "HEAD")
}

// Checkout switches to branch. A remote-tracking branch such as
// "origin/feature" leaves HEAD detached at its tip.
func (r *Repo) Checkout(ctx context.Context, branch string) error {
	return r.run.Run(ctx, r.Path, "checkout", branch)
}
