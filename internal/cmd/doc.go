// Package cmd provides helpers for executing shell commands with proper error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users.
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "branch", "-a")
//	if err != nil {
//	    // err contains git's stderr output if available
//	}
//
//	// Destructive commands run attached to the terminal:
//	err := cmd.AttachedContext(ctx, repoDir, "git", "reset", "--hard", hash)
//
// Every invocation is echoed through the context logger in verbose mode.
//
// # Design Notes
//
// grh shells out to the git CLI rather than using a Go git library, so the
// user's own configuration (hooks, credential helpers, aliases) applies to
// every command it runs.
package cmd
