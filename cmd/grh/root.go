package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/raphi011/grh/internal/config"
	"github.com/raphi011/grh/internal/git"
	"github.com/raphi011/grh/internal/log"
	"github.com/raphi011/grh/internal/output"
	"github.com/raphi011/grh/internal/resetflow"
	"github.com/raphi011/grh/internal/ui/prompt"
	"github.com/raphi011/grh/internal/ui/styles"
)

// exitInterrupted is the conventional status after SIGINT.
const exitInterrupted = 130

var (
	// Global flags
	verbose    bool
	quiet      bool
	noColor    bool
	configPath string
)

// rootCmd represents the grh command; there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "grh",
	Short: "Interactively reset a branch of a local git repository",
	Long: `grh scans the current directory for git repositories and walks you through
resetting one of them: pick a repository, a branch and a commit, choose the
reset mode, confirm, and grh runs git reset for you.

After the reset grh checks whether the branch diverged from its upstream.
For hard resets it offers a force push protected by --force-with-lease.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Create logger (stderr for diagnostics)
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))

		// Add output printer (stdout for the session)
		ctx = output.WithPrinter(ctx, output.NewTerminal(os.Stdout, os.Environ(), noColor))
		cmd.SetContext(ctx)

		return git.CheckGit()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Prompts block reading stdin, which a context cannot interrupt.
		stop := context.AfterFunc(ctx, func() {
			fmt.Fprintln(os.Stderr)
			os.Exit(exitInterrupted)
		})
		defer stop()

		root, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		cfg := loadConfig(ctx, configPath)
		out := output.FromContext(ctx)
		p := prompt.New(os.Stdin, out, prompt.WithWidth(terminalWidth(os.Stdout)))

		outcome, err := resetflow.New(root, cfg, git.ExecRunner{}, p, out).Run(ctx)
		if err != nil {
			return err
		}
		log.FromContext(ctx).Debug("session finished", "outcome", outcome)
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		code := reportError(output.NewTerminal(os.Stderr, os.Environ(), noColor), err)
		cancel()
		os.Exit(code)
	}
}

// reportError prints err and returns the exit code for it.
func reportError(p *output.Printer, err error) int {
	if errors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	p.Println()
	p.Line(styles.Red, "❌ Error: "+err.Error())
	return 1
}

// loadConfig reads path, or the default location when path is empty.
// Problems are reported as warnings and the defaults are used.
func loadConfig(ctx context.Context, path string) config.Config {
	l := log.FromContext(ctx)
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			l.Printf("Warning: %v\n", err)
		}
		return cfg
	}

	if _, err := os.Stat(path); err != nil {
		l.Printf("Warning: config file %s: %v\n", path, err)
		return config.Default()
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		l.Printf("Warning: %v\n", err)
	}
	return cfg
}

// terminalWidth returns the width of f, or 0 when it is not a terminal.
func terminalWidth(f *os.File) int {
	width, _, err := term.GetSize(f.Fd())
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $GRH_CONFIG or ~/.config/grh/config.toml)")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}
