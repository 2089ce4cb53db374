// Package resetflow runs the interactive reset session: pick a repository,
// a branch and a commit, choose a reset mode, confirm, reset, then check
// whether the branch diverged from its upstream.
//
// Each step either advances or ends the session with an [Outcome]. Missing
// git output ends the session with a message rather than an error; Run only
// returns an error for failures outside the session's control.
package resetflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/grh/internal/config"
	"github.com/raphi011/grh/internal/git"
	"github.com/raphi011/grh/internal/log"
	"github.com/raphi011/grh/internal/output"
	"github.com/raphi011/grh/internal/ui/prompt"
	"github.com/raphi011/grh/internal/ui/styles"
)

// Session holds what was selected so far.
type Session struct {
	RepoPath    string // absolute
	RepoDisplay string // relative to the scan root
	Branch      string // branch the reset applies to
	Commit      string // selected log line
	Hash        string
	Mode        git.ResetMode
}

// Flow is one interactive reset session.
type Flow struct {
	root   string
	cfg    config.Config
	run    git.Runner
	prompt *prompt.Prompter
	out    *output.Printer

	Session Session
}

// New creates a Flow scanning root. A nil runner uses git.ExecRunner.
func New(root string, cfg config.Config, run git.Runner, p *prompt.Prompter, out *output.Printer) *Flow {
	if run == nil {
		run = git.ExecRunner{}
	}
	return &Flow{root: root, cfg: cfg, run: run, prompt: p, out: out}
}

// Run executes the session. Closed input ends it as Cancelled.
func (f *Flow) Run(ctx context.Context) (Outcome, error) {
	outcome, err := f.steps(ctx)
	if errors.Is(err, prompt.ErrInputClosed) {
		log.FromContext(ctx).Debug("input closed", "outcome", Cancelled)
		return Cancelled, nil
	}
	return outcome, err
}

func (f *Flow) steps(ctx context.Context) (Outcome, error) {
	l := log.FromContext(ctx)

	f.blank()
	f.out.Line(styles.Bright, "🔍 Git Reset Helper")
	f.out.Line(styles.Bright, "==================")
	f.out.Println()

	f.out.Linef(styles.Dim, "Scanning for Git repositories in: %s", f.root)
	repos := git.FindRepos(f.root, f.cfg.Scan.SkipDirs)
	l.Debug("scan finished", "root", f.root, "repos", len(repos))
	if len(repos) == 0 {
		f.say(styles.Red, "❌ No Git repositories found in the current directory.")
		return NoRepos, nil
	}

	if err := f.selectRepo(repos); err != nil {
		return 0, err
	}
	repo := git.NewRepo(f.Session.RepoPath, f.run)

	branches, err := repo.Branches(ctx)
	switch {
	case errors.Is(err, git.ErrNoBranches):
		f.say(styles.Red, "❌ No branches found.")
		return Aborted, nil
	case err != nil:
		f.say(styles.Red, "❌ Failed to get branches.")
		return Aborted, nil
	}

	branch, err := f.prompt.Select("🌿 Select a branch:", branches)
	if err != nil {
		return 0, fmt.Errorf("select branch: %w", err)
	}
	f.Session.Branch = branch.Value
	f.say(styles.Green, "✅ Selected branch: "+branch.Value)

	f.checkout(ctx, repo, branch.Value)

	f.say(styles.Dim, "Loading commits...")
	commits, err := repo.RecentCommits(ctx, f.cfg.Log.MaxCount)
	if err != nil {
		f.say(styles.Red, "❌ Failed to get commits.")
		return Aborted, nil
	}

	commit, err := f.prompt.Select("📝 Select a commit to reset to:", commits)
	if err != nil {
		return 0, fmt.Errorf("select commit: %w", err)
	}
	f.Session.Commit = commit.Value

	hash, err := git.ExtractHash(commit.Value)
	if err != nil {
		f.say(styles.Red, "❌ Could not extract commit hash.")
		return Aborted, nil
	}
	f.Session.Hash = hash

	mode, err := f.chooseMode()
	if err != nil {
		return 0, err
	}
	f.Session.Mode = mode

	ok, err := f.confirm()
	if err != nil {
		return 0, err
	}
	if !ok {
		f.say(styles.Yellow, "❌ Reset cancelled.")
		return Cancelled, nil
	}

	if err := repo.Reset(ctx, mode, hash); err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		f.say(styles.Red, "❌ Reset failed: "+err.Error())
		return Failed, nil
	}
	f.say(styles.Green, "✅ Reset completed successfully!")

	if err := f.syncCheck(ctx, repo); err != nil {
		return 0, err
	}
	return Done, nil
}

func (f *Flow) selectRepo(repos []string) error {
	display := make([]string, len(repos))
	for i, r := range repos {
		display[i] = git.DisplayPath(f.root, r)
	}

	sel, err := f.prompt.Select("📁 Select a repository:", display)
	if err != nil {
		return fmt.Errorf("select repository: %w", err)
	}
	f.Session.RepoPath = repos[sel.Index]
	f.Session.RepoDisplay = sel.Value
	f.say(styles.Green, "✅ Selected repository: "+sel.Value)
	return nil
}

// checkout switches to branch when HEAD is elsewhere. A failed checkout does
// not stop the session; when HEAD is still on another branch, that branch is
// what gets reset. Checking out a remote-tracking branch detaches HEAD, which
// is not a failure.
func (f *Flow) checkout(ctx context.Context, repo *git.Repo, branch string) {
	current, _ := repo.CurrentBranch(ctx)
	if current == branch {
		return
	}

	f.say(styles.Dim, fmt.Sprintf("Switching to branch: %s...", branch))
	err := repo.Checkout(ctx, branch)
	if err == nil {
		return
	}
	log.FromContext(ctx).Debug("checkout failed", "branch", branch, "err", err)

	after, ok := repo.CurrentBranch(ctx)
	if !ok || after == branch || after == git.DetachedHead {
		f.say(styles.Yellow, fmt.Sprintf("⚠️  Could not switch to %s: %v", branch, err))
		return
	}
	f.say(styles.Yellow, fmt.Sprintf("⚠️  Could not switch to %s, still on %s.", branch, after))
	f.Session.Branch = after
}

func (f *Flow) chooseMode() (git.ResetMode, error) {
	f.say(styles.Yellow, "⚠️  Select reset type:")
	for _, c := range modeChoices {
		f.out.Line(styles.Dim, c)
	}

	answer, err := f.prompt.Ask("\nEnter choice (1-3) or press Enter for default: ")
	if err != nil {
		return "", fmt.Errorf("choose reset mode: %w", err)
	}
	return ParseMode(answer), nil
}

func (f *Flow) confirm() (bool, error) {
	s := f.Session
	f.say(styles.Bright, "📋 Summary:")
	f.out.Line(styles.Dim, "Repository: "+s.RepoDisplay)
	f.out.Line(styles.Dim, "Branch: "+s.Branch)
	f.out.Line(styles.Dim, "Commit: "+s.Commit)
	f.out.Line(styles.Dim, "Command: "+git.CommandLine(git.ResetArgs(s.Mode, s.Hash)))

	ok, err := f.prompt.Confirm("\n⚠️  Are you sure you want to proceed? (y/N): ")
	if err != nil {
		return false, fmt.Errorf("confirm reset: %w", err)
	}
	return ok, nil
}

// say prints a line preceded by an empty one.
func (f *Flow) say(tone styles.Tone, text string) {
	f.blank()
	f.out.Line(tone, text)
}

func (f *Flow) blank() {
	f.out.Println()
}
