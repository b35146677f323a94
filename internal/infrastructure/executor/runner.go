// Package executor runs external commands with timeout control and a small
// failure taxonomy.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"runtime"
	"time"

	"github.com/doeshing/termsh/internal/domain"
	"github.com/doeshing/termsh/internal/ports"
)

// Runner executes one command at a time on the host.
type Runner struct {
	strategy InvocationStrategy
	logger   ports.Logger
}

// NewRunner builds a runner using the invocation strategy for the current
// platform. A nil strategy selects by runtime.GOOS.
func NewRunner(strategy InvocationStrategy, logger ports.Logger) *Runner {
	if strategy == nil {
		strategy = ForPlatform(runtime.GOOS)
	}
	return &Runner{strategy: strategy, logger: logger}
}

// Strategy exposes the selected invocation strategy for diagnostics.
func (r *Runner) Strategy() InvocationStrategy {
	return r.strategy
}

// Run implements ports.CommandRunner. Stdout and stderr are captured in full
// as text, never truncated and never streamed. A non-zero exit code is a
// normal outcome; only OS-level trouble populates Failure.
func (r *Runner) Run(ctx context.Context, command string, timeout time.Duration) domain.ExecutionOutcome {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd, err := r.strategy.Build(ctx, command)
	if err != nil {
		return domain.ExecutionOutcome{Failure: classify(err, timeout)}
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	duration := time.Since(start).Milliseconds()

	outcome := domain.ExecutionOutcome{
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: duration,
	}

	// Timeout wins over the kill-induced exit error it causes.
	if ctx.Err() == context.DeadlineExceeded {
		outcome.Failure = &domain.ExecFailure{
			Kind:   domain.FailureTimeout,
			Detail: fmt.Sprintf("exceeded %d seconds", int(timeout/time.Second)),
		}
		if r.logger != nil {
			r.logger.Warn("command timed out", map[string]interface{}{"command": command, "timeout": timeout.String()})
		}
		return outcome
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		outcome.ExitCode = exitErr.ExitCode()
		return outcome
	}
	if err != nil {
		outcome.Failure = classify(err, timeout)
		return outcome
	}
	return outcome
}

// classify maps OS-level errors onto the failure taxonomy.
func classify(err error, timeout time.Duration) *domain.ExecFailure {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &domain.ExecFailure{
			Kind:   domain.FailureTimeout,
			Detail: fmt.Sprintf("exceeded %d seconds", int(timeout/time.Second)),
		}
	case errors.Is(err, exec.ErrNotFound):
		return &domain.ExecFailure{Kind: domain.FailureNotFound, Detail: err.Error()}
	case errors.Is(err, fs.ErrPermission):
		return &domain.ExecFailure{Kind: domain.FailurePermissionDenied, Detail: err.Error()}
	}
	var pathErr *fs.PathError
	var execErr *exec.Error
	if errors.As(err, &pathErr) || errors.As(err, &execErr) {
		return &domain.ExecFailure{Kind: domain.FailureOSError, Detail: err.Error()}
	}
	return &domain.ExecFailure{Kind: domain.FailureUnknown, Detail: err.Error()}
}

var _ ports.CommandRunner = (*Runner)(nil)
