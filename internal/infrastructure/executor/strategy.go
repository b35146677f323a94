package executor

import (
	"context"
	"os"
	"os/exec"

	"mvdan.cc/sh/v3/shell"
)

// InvocationStrategy turns a raw command line into a runnable process. The
// strategy is selected once at startup by target platform instead of
// scattering GOOS conditionals through the executor.
type InvocationStrategy interface {
	// Build prepares the child process for the given line.
	Build(ctx context.Context, line string) (*exec.Cmd, error)
	// Name identifies the strategy for diagnostics.
	Name() string
}

// ForPlatform returns the invocation strategy for the given GOOS value.
// Windows needs the whole line interpreted by cmd.exe so shell verbs like
// dir, del and copy resolve; everywhere else the line is tokenized into an
// argument vector and executed without a shell for predictable quoting.
func ForPlatform(goos string) InvocationStrategy {
	if goos == "windows" {
		return &shellStrategy{shell: "cmd", flag: "/C", name: "cmd"}
	}
	return &argvStrategy{fallback: posixShellStrategy()}
}

func posixShellStrategy() *shellStrategy {
	sh := os.Getenv("SHELL")
	if sh == "" {
		sh = "/bin/sh"
	}
	return &shellStrategy{shell: sh, flag: "-c", name: "sh"}
}

// shellStrategy hands the raw line to a shell interpreter.
type shellStrategy struct {
	shell string
	flag  string
	name  string
}

func (s *shellStrategy) Build(ctx context.Context, line string) (*exec.Cmd, error) {
	return exec.CommandContext(ctx, s.shell, s.flag, line), nil
}

func (s *shellStrategy) Name() string { return s.name }

// argvStrategy tokenizes the line with shell-word-splitting rules (quotes and
// escapes honored) and executes the argument vector directly. Lines the
// tokenizer rejects (unbalanced quotes) fall back to shell interpretation of
// the raw line rather than erroring.
type argvStrategy struct {
	fallback *shellStrategy
}

func (s *argvStrategy) Build(ctx context.Context, line string) (*exec.Cmd, error) {
	fields, err := shell.Fields(line, nil)
	if err != nil || len(fields) == 0 {
		return s.fallback.Build(ctx, line)
	}
	return exec.CommandContext(ctx, fields[0], fields[1:]...), nil
}

func (s *argvStrategy) Name() string { return "argv" }
