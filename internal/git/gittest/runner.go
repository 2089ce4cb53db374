// Package gittest provides a scripted git runner for tests.
package gittest

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Call is one recorded git invocation.
type Call struct {
	Dir      string
	Args     []string
	Attached bool
}

// String returns the arguments joined by spaces, e.g. "reset --hard abc1234".
func (c Call) String() string {
	return strings.Join(c.Args, " ")
}

type result struct {
	out string
	ok  bool
}

// Runner answers git invocations from a script and records every call.
// Commands are keyed by their arguments joined with single spaces.
// Run shares the Output script. Unscripted Output and Run calls fail;
// unscripted Attached calls succeed.
type Runner struct {
	outputs  map[string][]result
	attached map[string]error
	Calls    []Call
}

// New returns an empty Runner.
func New() *Runner {
	return &Runner{
		outputs:  make(map[string][]result),
		attached: make(map[string]error),
	}
}

// On scripts a successful Output for args. Scripting the same args again
// queues another answer; the last answer repeats once the queue is drained.
func (r *Runner) On(args, out string) *Runner {
	r.outputs[args] = append(r.outputs[args], result{out: out, ok: true})
	return r
}

// Fail scripts a failing Output for args.
func (r *Runner) Fail(args string) *Runner {
	r.outputs[args] = append(r.outputs[args], result{})
	return r
}

// FailAttached makes Attached return err for args.
func (r *Runner) FailAttached(args string, err error) *Runner {
	r.attached[args] = err
	return r
}

// Output implements git.Runner.
func (r *Runner) Output(_ context.Context, dir string, args ...string) (string, bool) {
	r.Calls = append(r.Calls, Call{Dir: dir, Args: slices.Clone(args)})
	return r.next(args)
}

// Run implements git.Runner.
func (r *Runner) Run(_ context.Context, dir string, args ...string) error {
	r.Calls = append(r.Calls, Call{Dir: dir, Args: slices.Clone(args)})
	if _, ok := r.next(args); !ok {
		return fmt.Errorf("git %s failed", strings.Join(args, " "))
	}
	return nil
}

func (r *Runner) next(args []string) (string, bool) {
	key := strings.Join(args, " ")
	queue := r.outputs[key]
	if len(queue) == 0 {
		return "", false
	}
	res := queue[0]
	if len(queue) > 1 {
		r.outputs[key] = queue[1:]
	}
	return strings.TrimSpace(res.out), res.ok
}

// Attached implements git.Runner.
func (r *Runner) Attached(_ context.Context, dir string, args ...string) error {
	r.Calls = append(r.Calls, Call{Dir: dir, Args: slices.Clone(args), Attached: true})
	return r.attached[strings.Join(args, " ")]
}

// Ran reports whether args were run, in either mode.
func (r *Runner) Ran(args string) bool {
	for _, c := range r.Calls {
		if c.String() == args {
			return true
		}
	}
	return false
}

// RanPrefix reports whether any call's arguments start with prefix.
func (r *Runner) RanPrefix(prefix string) bool {
	for _, c := range r.Calls {
		if strings.HasPrefix(c.String(), prefix) {
			return true
		}
	}
	return false
}

// AttachedCalls returns the calls made in attached mode.
func (r *Runner) AttachedCalls() []Call {
	var calls []Call
	for _, c := range r.Calls {
		if c.Attached {
			calls = append(calls, c)
		}
	}
	return calls
}
