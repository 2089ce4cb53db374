package resetflow

import (
	"context"
	"fmt"

	"github.com/raphi011/grh/internal/git"
	"github.com/raphi011/grh/internal/log"
	"github.com/raphi011/grh/internal/ui/styles"
)

// syncCheck compares the branch with its upstream after a reset. A diverged
// hard-reset branch is offered a force push; other modes only get guidance.
func (f *Flow) syncCheck(ctx context.Context, repo *git.Repo) error {
	upstream, ok := repo.Upstream(ctx)
	if !ok {
		log.FromContext(ctx).Debug("no upstream", "branch", f.Session.Branch)
		return nil
	}

	status, ok := repo.ShortStatus(ctx)
	if !ok || !git.IsDiverged(status) {
		return nil
	}
	log.FromContext(ctx).Debug("diverged", "upstream", upstream)

	f.say(styles.Yellow, "⚠️  Your local branch has diverged from the remote branch.")

	remote, branch := f.cfg.Push.Remote, f.Session.Branch
	if f.Session.Mode != git.ResetHard {
		f.say(styles.Yellow, "📝 Note: Your local branch is different from remote.")
		f.out.Line(styles.Dim, "   To sync, you can:")
		f.out.Linef(styles.Dim, "   - Push changes: git push %s %s", remote, branch)
		f.out.Linef(styles.Dim, "   - Pull remote: git pull %s %s", remote, branch)
		f.out.Linef(styles.Dim, "   - Force push: git push --force %s %s", remote, branch)
		return nil
	}

	f.say(styles.Cyan, "🔄 Would you like to force push your local changes to overwrite the remote?")
	f.out.Line(styles.Dim, "   This will replace the remote branch with your local version.")
	f.out.Line(styles.Red, "   ⚠️  Warning: This cannot be undone and may affect other developers!")

	push, err := f.prompt.Confirm("\nForce push to remote? (y/N): ")
	if err != nil {
		return fmt.Errorf("confirm force push: %w", err)
	}
	if !push {
		f.say(styles.Yellow, "📝 Note: Your local branch remains different from remote.")
		f.out.Line(styles.Dim, "   To sync with remote later, you can:")
		f.out.Linef(styles.Dim, "   - Force push: git push --force %s %s", remote, branch)
		f.out.Linef(styles.Dim, "   - Pull remote: git pull %s %s", remote, branch)
		return nil
	}

	f.say(styles.Dim, "Force pushing to remote...")
	if err := repo.ForcePushWithLease(ctx, remote, branch); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		f.say(styles.Red, "❌ Force push failed: "+err.Error())
		f.out.Linef(styles.Dim, "   You may need to use: git push --force %s %s", remote, branch)
		return nil
	}
	f.say(styles.Green, "✅ Force push completed successfully!")
	f.out.Line(styles.Dim, "   Remote branch has been overwritten with your local changes.")
	return nil
}
