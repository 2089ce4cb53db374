package git

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// DefaultCommitCount is how many commits RecentCommits lists by default.
const DefaultCommitCount = 20

// hashPattern matches an abbreviated or full commit hash.
var hashPattern = regexp.MustCompile(`[a-f0-9]{7,}`)

// RecentCommits returns the last n commits of HEAD as printed by
// git log --oneline --graph, one entry per non-blank line. Graph-only lines
// (merge edges) are kept so the listing reads like git's own output.
func (r *Repo) RecentCommits(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		n = DefaultCommitCount
	}
	out, ok := r.run.Output(ctx, r.Path, "log", "--oneline", "--graph", "--max-count="+strconv.Itoa(n))
	if !ok || out == "" {
		return nil, ErrNoCommits
	}
	commits := ParseCommitLines(out)
	if len(commits) == 0 {
		return nil, ErrNoCommits
	}
	return commits, nil
}

// ParseCommitLines drops blank lines and keeps the rest verbatim.
func ParseCommitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// ExtractHash returns the first run of 7 or more lowercase hex characters
// in a log line, e.g. "a1b2c3d" from "* a1b2c3d Fix bug".
func ExtractHash(line string) (string, error) {
	hash := hashPattern.FindString(line)
	if hash == "" {
		return "", ErrNoCommitHash
	}
	return hash, nil
}
