package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// mkdirs creates each path (relative to root) as a directory.
func mkdirs(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(filepath.Join(root, p), 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", p, err)
		}
	}
}

// fixtureRepo is a repository built with go-git, no git binary involved.
type fixtureRepo struct {
	t       *testing.T
	path    string
	repo    *gogit.Repository
	commits []plumbing.Hash // oldest first
}

// newFixtureRepo initializes a repository on branch main at path.
func newFixtureRepo(t *testing.T, path string) *fixtureRepo {
	t.Helper()
	repo, err := gogit.PlainInitWithOptions(path, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: plumbing.Main},
	})
	if err != nil {
		t.Fatalf("failed to init repo at %s: %v", path, err)
	}
	return &fixtureRepo{t: t, path: path, repo: repo}
}

// commit writes a file named after the commit count and commits it.
func (f *fixtureRepo) commit(msg string) plumbing.Hash {
	f.t.Helper()
	wt, err := f.repo.Worktree()
	if err != nil {
		f.t.Fatalf("worktree: %v", err)
	}
	name := filepath.Join("changes", msg+".txt")
	if err := os.MkdirAll(filepath.Join(f.path, "changes"), 0o755); err != nil {
		f.t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(f.path, name), []byte(msg+"\n"), 0o644); err != nil {
		f.t.Fatal(err)
	}
	if _, err := wt.Add(name); err != nil {
		f.t.Fatalf("add %s: %v", name, err)
	}
	hash, err := wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@test.com",
			When:  time.Unix(1700000000+int64(len(f.commits))*60, 0),
		},
	})
	if err != nil {
		f.t.Fatalf("commit %q: %v", msg, err)
	}
	f.commits = append(f.commits, hash)
	return hash
}

// setRef points a full reference name at hash.
func (f *fixtureRepo) setRef(name plumbing.ReferenceName, hash plumbing.Hash) {
	f.t.Helper()
	if err := f.repo.Storer.SetReference(plumbing.NewHashReference(name, hash)); err != nil {
		f.t.Fatalf("set %s: %v", name, err)
	}
}

// track configures origin and makes branch track origin/branch at hash.
func (f *fixtureRepo) track(branch string, hash plumbing.Hash) {
	f.t.Helper()
	if _, err := f.repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://example.invalid/fixture.git"},
	}); err != nil && err != gogit.ErrRemoteExists {
		f.t.Fatalf("create remote: %v", err)
	}
	if err := f.repo.CreateBranch(&gitconfig.Branch{
		Name:   branch,
		Remote: "origin",
		Merge:  plumbing.NewBranchReferenceName(branch),
	}); err != nil {
		f.t.Fatalf("create branch config: %v", err)
	}
	f.setRef(plumbing.NewRemoteReferenceName("origin", branch), hash)
}
