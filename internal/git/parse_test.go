package git

import (
	"errors"
	"slices"
	"testing"
)

func TestParseBranches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		out  string
		want []string
	}{
		{
			name: "local and remote",
			out: `* main
  feature/login
  remotes/origin/HEAD -> origin/main
  remotes/origin/main
  remotes/origin/feature/login`,
			want: []string{"main", "feature/login", "origin/main", "origin/feature/login"},
		},
		{
			name: "detached head line is dropped",
			out: `* (HEAD detached at a1b2c3d)
  main`,
			want: []string{"main"},
		},
		{
			name: "blank lines ignored",
			out:  "\n  main\n\n  dev\n",
			want: []string{"main", "dev"},
		},
		{
			name: "branch named with HEAD is dropped too",
			out:  "  main\n  fix-HEAD-parsing",
			want: []string{"main"},
		},
		{
			name: "only HEAD lines",
			out:  "  remotes/origin/HEAD -> origin/main",
			want: nil,
		},
		{
			name: "worktree marker kept verbatim",
			out:  "+ wt-branch\n* main",
			want: []string{"+ wt-branch", "main"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseBranches(tt.out); !slices.Equal(got, tt.want) {
				t.Errorf("ParseBranches() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCommitLines(t *testing.T) {
	t.Parallel()

	out := "* 9fceb02 Merge branch 'feature'\n|\\  \n| * 2d3acf9 Add login\n\n* a1b2c3d Initial commit"
	want := []string{
		"* 9fceb02 Merge branch 'feature'",
		"|\\  ",
		"| * 2d3acf9 Add login",
		"* a1b2c3d Initial commit",
	}
	if got := ParseCommitLines(out); !slices.Equal(got, want) {
		t.Errorf("ParseCommitLines() = %q, want %q", got, want)
	}
}

func TestExtractHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line    string
		want    string
		wantErr bool
	}{
		{line: "* a1b2c3d Fix bug", want: "a1b2c3d"},
		{line: "| * 2d3acf9 Add login", want: "2d3acf9"},
		{line: "* 0123456789abcdef0123456789abcdef01234567 full hash", want: "0123456789abcdef0123456789abcdef01234567"},
		{line: "* a1b2c3d Revert deadbeefcafe", want: "a1b2c3d"},
		{line: "|\\  ", wantErr: true},
		{line: "* abc123 too short", wantErr: true},
		{line: "* A1B2C3D upper case is not a hash", wantErr: true},
		{line: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			got, err := ExtractHash(tt.line)
			if tt.wantErr {
				if !errors.Is(err, ErrNoCommitHash) {
					t.Errorf("ExtractHash(%q) error = %v, want ErrNoCommitHash", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractHash(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ExtractHash(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsDiverged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status string
		want   bool
	}{
		{"## main...origin/main", false},
		{"## main...origin/main [ahead 2]", true},
		{"## main...origin/main [behind 3]", true},
		{"## main...origin/main [ahead 1, behind 4]\n M file.go", true},
		{"## main", false},
		{"## main...origin/main [gone]", false},
	}

	for _, tt := range tests {
		if got := IsDiverged(tt.status); got != tt.want {
			t.Errorf("IsDiverged(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestResetArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode ResetMode
		want string
	}{
		{ResetSoft, "git reset --soft a1b2c3d"},
		{ResetMixed, "git reset --mixed a1b2c3d"},
		{ResetHard, "git reset --hard a1b2c3d"},
	}

	for _, tt := range tests {
		if got := CommandLine(ResetArgs(tt.mode, "a1b2c3d")); got != tt.want {
			t.Errorf("CommandLine(ResetArgs(%s)) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestForcePushArgs(t *testing.T) {
	t.Parallel()
	got := CommandLine(ForcePushArgs("origin", "main"))
	if want := "git push --force-with-lease origin main"; got != want {
		t.Errorf("CommandLine(ForcePushArgs) = %q, want %q", got, want)
	}
}
