// Package checks implements the peripheral validators: coverage, lint, and
// type-check hooks that run an external tool and pattern-match its output.
//
// Every check follows the same contract as the core engine: run the tool
// under a bounded timeout, and resolve to allow whenever the tool is missing,
// times out, or produces output we cannot interpret. Only a confident failure
// signal blocks.
package checks

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

// Runner executes an external command and reports its outcome.
type Runner interface {
	// Run executes argv in dir, returning whether the command exited zero
	// and its combined stdout+stderr. A non-nil error means the command
	// could not run to completion (missing binary, timeout); callers treat
	// that as an inconclusive result, not a failure signal.
	Run(ctx context.Context, dir string, argv []string) (ok bool, output string, err error)
}

// ExecRunner implements Runner using os/exec with a per-invocation timeout.
type ExecRunner struct {
	timeout time.Duration
}

// NewExecRunner creates a runner that kills commands after the given timeout.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{timeout: timeout}
}

// Run executes argv in dir.
func (r *ExecRunner) Run(ctx context.Context, dir string, argv []string) (bool, string, error) {
	if len(argv) == 0 {
		return false, "", fmt.Errorf("empty command")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	output := stdout.String() + stderr.String()

	if ctx.Err() != nil {
		return false, output, fmt.Errorf("command timed out after %v: %w", r.timeout, ctx.Err())
	}
	if runErr != nil {
		if _, isExit := runErr.(*exec.ExitError); isExit {
			// The command ran and failed; that's a real signal
			return false, output, nil
		}
		return false, output, fmt.Errorf("failed to run command: %w", runErr)
	}

	return true, output, nil
}

// Outcome is a validator's verdict.
type Outcome struct {
	// Block vetoes the gated action when true
	Block bool

	// Reason explains a block or annotates an allow; may be empty
	Reason string
}

func allowOutcome(reason string) Outcome {
	return Outcome{Block: false, Reason: reason}
}

func blockOutcome(reason string) Outcome {
	return Outcome{Block: true, Reason: reason}
}
