package executor

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/doeshing/termsh/internal/domain"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX utilities")
	}
}

func TestRunCapturesStdout(t *testing.T) {
	skipOnWindows(t)
	runner := NewRunner(nil, nil)

	outcome := runner.Run(context.Background(), "echo hello world", 5*time.Second)
	if outcome.Failed() {
		t.Fatalf("unexpected failure: %v", outcome.Failure)
	}
	if got := strings.TrimSpace(outcome.Stdout); got != "hello world" {
		t.Errorf("stdout: got %q", got)
	}
	if outcome.ExitCode != 0 {
		t.Errorf("exit code: got %d", outcome.ExitCode)
	}
}

func TestRunQuotedArgumentsSurviveTokenization(t *testing.T) {
	skipOnWindows(t)
	runner := NewRunner(nil, nil)

	outcome := runner.Run(context.Background(), `echo "two words"`, 5*time.Second)
	if outcome.Failed() {
		t.Fatalf("unexpected failure: %v", outcome.Failure)
	}
	if got := strings.TrimSpace(outcome.Stdout); got != "two words" {
		t.Errorf("stdout: got %q", got)
	}
}

func TestRunNonZeroExitIsNotAFailure(t *testing.T) {
	skipOnWindows(t)
	runner := NewRunner(nil, nil)

	outcome := runner.Run(context.Background(), "false", 5*time.Second)
	if outcome.Failed() {
		t.Fatalf("non-zero exit must not populate Failure: %v", outcome.Failure)
	}
	if outcome.ExitCode == 0 {
		t.Error("expected non-zero exit code")
	}
}

func TestRunTimeout(t *testing.T) {
	skipOnWindows(t)
	runner := NewRunner(nil, nil)

	start := time.Now()
	outcome := runner.Run(context.Background(), "sleep 5", 1*time.Second)
	if !outcome.Failed() || outcome.Failure.Kind != domain.FailureTimeout {
		t.Fatalf("expected timeout failure, got %+v", outcome)
	}
	if !strings.Contains(outcome.Failure.Detail, "1 second") {
		t.Errorf("timeout message must report the configured bound: %q", outcome.Failure.Detail)
	}
	if elapsed := time.Since(start); elapsed > 4*time.Second {
		t.Errorf("child was not terminated promptly: %v", elapsed)
	}
}

func TestRunMissingExecutable(t *testing.T) {
	skipOnWindows(t)
	runner := NewRunner(nil, nil)

	outcome := runner.Run(context.Background(), "definitely-not-a-command-xyz", 5*time.Second)
	if !outcome.Failed() {
		t.Fatal("expected failure for missing executable")
	}
	if outcome.Failure.Kind != domain.FailureNotFound {
		t.Errorf("got kind %s, want %s", outcome.Failure.Kind, domain.FailureNotFound)
	}
}

func TestRunUnbalancedQuotesFallsBackToShell(t *testing.T) {
	skipOnWindows(t)
	runner := NewRunner(nil, nil)

	// The tokenizer rejects the dangling quote; the raw line must still reach
	// a shell instead of erroring out.
	outcome := runner.Run(context.Background(), `echo "unterminated`, 5*time.Second)
	if outcome.Failed() {
		t.Fatalf("fallback should have run the line: %v", outcome.Failure)
	}
}

func TestForPlatform(t *testing.T) {
	if got := ForPlatform("windows").Name(); got != "cmd" {
		t.Errorf("windows strategy: got %s", got)
	}
	if got := ForPlatform("linux").Name(); got != "argv" {
		t.Errorf("linux strategy: got %s", got)
	}
	if got := ForPlatform("darwin").Name(); got != "argv" {
		t.Errorf("darwin strategy: got %s", got)
	}
}
