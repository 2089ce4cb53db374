// Package git provides the git operations grh sequences, via shell commands.
//
// All operations call the git CLI through a [Runner] rather than using a Go
// git library, so user configuration (hooks, credential helpers, aliases)
// applies. Output is read as line-oriented text.
//
// # Discovery
//
//   - [FindRepos]: recursive scan for directories containing .git
//   - [DisplayPath]: repository path relative to the scan root
//
// # Repository Operations
//
// A [Repo] pins the working directory of every command it runs:
//
//   - [Repo.Branches], [ParseBranches]: branch listing
//   - [Repo.CurrentBranch], [Repo.Checkout]: branch switching (best effort)
//   - [Repo.RecentCommits], [ExtractHash]: commit selection
//   - [Repo.Reset]: git reset --soft/--mixed/--hard, attached to the terminal
//   - [Repo.Upstream], [Repo.ShortStatus], [IsDiverged]: post-reset sync check
//   - [Repo.ForcePushWithLease]: lease-protected force push
//
// # Runners
//
// [ExecRunner] runs the git binary. Query commands use [Runner.Output], which
// reports failure as a false flag; checkout uses [Runner.Run], which returns
// git's stderr as the error; the destructive reset and push use
// [Runner.Attached], which streams git's output live and returns an error.
package git
