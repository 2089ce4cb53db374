package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/grh/internal/log"
)

// Run executes a command and returns stderr in the error message if it fails
func Run(cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stderrError(err, &stderr)
	}
	return nil
}

// Output executes a command and returns stdout, with stderr in error if it fails
func Output(cmd *exec.Cmd) ([]byte, error) {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return nil, stderrError(err, &stderr)
	}
	return output, nil
}

// RunContext runs name with args in dir, logging the invocation.
// A cancelled context is reported as the context's error.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	err := Run(c)
	done(time.Since(start))

	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// OutputContext runs name with args in dir and returns its stdout.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	out, err := Output(c)
	done(time.Since(start))

	if err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return out, err
}

// AttachedContext runs name with args in dir with the process's own
// stdin, stdout and stderr attached, so the user sees live output.
// Since stderr is not captured the error names the command and exit status.
func AttachedContext(ctx context.Context, dir, name string, args ...string) error {
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	err := c.Run()
	done(time.Since(start))

	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("command failed: %s (exit status %d)", line, exitErr.ExitCode())
	}
	return fmt.Errorf("command failed: %s: %w", line, err)
}

func stderrError(err error, stderr *bytes.Buffer) error {
	if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
		return fmt.Errorf("%s", errMsg)
	}
	return err
}
