// Package config handles loading and validation of grh configuration.
//
// Configuration is read from ~/.config/grh/config.toml. The GRH_CONFIG
// environment variable or the --config flag point at a different file.
// A missing file is not an error: every setting has a default, and the
// defaults reproduce the tool's unconfigured behaviour exactly.
//
// # Settings
//
//	[scan]
//	skip_dirs = ["node_modules"]  # directory names never scanned
//
//	[log]
//	max_count = 20                # commits offered for selection (1..1000)
//
//	[push]
//	remote = "origin"             # remote for force push and sync hints
//
// Hidden directories are always skipped during the scan; skip_dirs only adds
// names on top of that rule.
package config
