// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The dispatcher depends only on these abstractions;
// concrete implementations (YAML config loader, SQLite audit store, readline
// reader, exec-based runner) live in the infrastructure layer.
package ports

import (
	"context"
	"time"

	"github.com/doeshing/termsh/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.termsh/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// RiskClassifier decides whether a command line requires confirmation
// before it may reach the executor.
type RiskClassifier interface {
	IsHighRisk(command string) bool
}

// CommandRunner executes one external command, bounded by timeout.
// OS-level failures are reported inside the outcome, never as a panic or a
// returned error: a dispatch must survive any child-process misbehavior.
type CommandRunner interface {
	Run(ctx context.Context, command string, timeout time.Duration) domain.ExecutionOutcome
}

// ConfirmationPrompter asks the user a yes/no question on the interactive
// terminal. Enabled reports whether a human is actually attached.
type ConfirmationPrompter interface {
	Confirm(question string) (bool, error)
	Enabled() bool
}

// HistoryStore persists the plain-text command history across sessions.
type HistoryStore interface {
	Load() ([]string, error)
	Save(entries []string) error
	Path() string
}

// AuditRepository records every dispatched command with its outcome.
type AuditRepository interface {
	Save(record domain.AuditRecord) error
	Records(limit int, search string) ([]domain.AuditRecord, error)
	Clear() error
	ExportJSON(dest string) error
	Path() string
}

// LineReader supplies finished input lines in interactive mode. The dispatch
// core must function without one (single-shot mode), so only the REPL loop
// holds a reader.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	AppendHistory(line string)
	Close() error
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
