package resetflow

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"github.com/raphi011/grh/internal/config"
	"github.com/raphi011/grh/internal/git"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		answer string
		want   git.ResetMode
	}{
		{"1", git.ResetSoft},
		{"2", git.ResetMixed},
		{"3", git.ResetHard},
		{"", git.ResetMixed},
		{"4", git.ResetMixed},
		{" 3", git.ResetMixed},
		{"hard", git.ResetMixed},
	}

	for _, tt := range tests {
		if got := ParseMode(tt.answer); got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.answer, got, tt.want)
		}
	}
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	want := map[Outcome]string{
		Done: "done", Cancelled: "cancelled", Failed: "failed",
		NoRepos: "no-repos", Aborted: "aborted", Outcome(42): "unknown",
	}
	for o, s := range want {
		if got := o.String(); got != s {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), got, s)
		}
	}
}

func TestProperty_ModeMapping(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		answer := rapid.String().Draw(t, "answer")
		got := ParseMode(answer)
		switch answer {
		case "1":
			if got != git.ResetSoft {
				t.Fatalf("ParseMode(1) = %q", got)
			}
		case "3":
			if got != git.ResetHard {
				t.Fatalf("ParseMode(3) = %q", got)
			}
		default:
			if got != git.ResetMixed {
				t.Fatalf("ParseMode(%q) = %q, want mixed", answer, got)
			}
		}
	})
}

// TestProperty_ConfirmationGatesReset checks that only "y" or "Y" lets the
// reset run, whatever mode was chosen.
func TestProperty_ConfirmationGatesReset(t *testing.T) {
	root := newRepoTree(t, "api")

	rapid.Check(t, func(t *rapid.T) {
		mode := rapid.SampledFrom([]string{"1", "2", "3", ""}).Draw(t, "mode")
		answer := rapid.OneOf(
			rapid.SampledFrom([]string{"y", "Y", "n", "N", "yes", ""}),
			rapid.StringMatching(`[a-zA-Z0-9 ]{0,4}`),
		).Draw(t, "answer")

		run := mainRepo()
		flow, _ := newTestFlow(t, root, config.Default(), run, "1", "1", "1", mode, answer)
		outcome, err := flow.Run(context.Background())
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		attached := run.AttachedCalls()
		if answer == "y" || answer == "Y" {
			if outcome != Done || len(attached) != 1 {
				t.Fatalf("answer %q: outcome %v with %d attached calls, want done with 1", answer, outcome, len(attached))
			}
			if want := git.CommandLine(git.ResetArgs(ParseMode(mode), "a1b2c3d")); "git "+attached[0].String() != want {
				t.Fatalf("ran %q, want %q", attached[0], want)
			}
			return
		}
		if outcome != Cancelled || len(attached) != 0 {
			t.Fatalf("answer %q: outcome %v with %d attached calls, want cancelled with none", answer, outcome, len(attached))
		}
	})
}
