// Package dispatch contains the session core: one entry point that takes a
// finished input line and routes it to a builtin handler or the external
// executor, applying the high-risk confirmation gate on the way.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/doeshing/termsh/internal/domain"
	"github.com/doeshing/termsh/internal/infrastructure/builtin"
	"github.com/doeshing/termsh/internal/ports"
)

// Params carries the collaborators for a dispatch service. Runner, Table and
// Classifier are required; the stores and prompter may be nil, which disables
// the corresponding feature rather than failing the session.
type Params struct {
	Config     domain.Config
	Table      *builtin.Table
	Classifier ports.RiskClassifier
	Runner     ports.CommandRunner
	Prompter   ports.ConfirmationPrompter
	Store      ports.HistoryStore
	Audit      ports.AuditRepository
	Logger     ports.Logger
	Out        io.Writer
	Err        io.Writer
}

// Service routes input lines for one shell session and owns the in-memory
// history log.
type Service struct {
	cfg        domain.Config
	table      *builtin.Table
	classifier ports.RiskClassifier
	runner     ports.CommandRunner
	prompter   ports.ConfirmationPrompter
	store      ports.HistoryStore
	audit      ports.AuditRepository
	logger     ports.Logger
	history    *domain.CommandLog
	out        io.Writer
	errOut     io.Writer
}

// NewService builds the session core and seeds the history log from the
// persistent store when history saving is enabled.
func NewService(p Params) *Service {
	if p.Out == nil {
		p.Out = os.Stdout
	}
	if p.Err == nil {
		p.Err = os.Stderr
	}
	s := &Service{
		cfg:        p.Config,
		table:      p.Table,
		classifier: p.Classifier,
		runner:     p.Runner,
		prompter:   p.Prompter,
		store:      p.Store,
		audit:      p.Audit,
		logger:     p.Logger,
		history:    domain.NewCommandLog(p.Config.HistoryCap()),
		out:        p.Out,
		errOut:     p.Err,
	}
	if s.cfg.ShouldSaveHistory() && s.store != nil {
		entries, err := s.store.Load()
		if err != nil {
			s.warn("could not load saved history", map[string]interface{}{"error": err.Error()})
		} else {
			s.history.Seed(entries)
		}
	}
	return s
}

// Dispatch processes one input line and reports whether the session should
// continue. Every failure mode ends in a printed message and a true return;
// only exit and quit stop the session.
func (s *Service) Dispatch(line string, autoConfirm bool) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	s.history.Append(trimmed)

	keyword := strings.ToLower(firstField(trimmed))
	switch keyword {
	case "exit", "quit":
		s.FlushHistory()
		return false
	}

	started := time.Now()
	record := domain.AuditRecord{
		Timestamp: started,
		Command:   trimmed,
		HighRisk:  s.classifier.IsHighRisk(trimmed),
	}

	if handler, ok := s.table.Lookup(keyword); ok {
		record.Builtin = true
		handler(builtin.Request{Line: trimmed, AutoConfirm: autoConfirm})
		record.DurationMS = time.Since(started).Milliseconds()
		s.saveAudit(record)
		return true
	}

	if record.HighRisk {
		confirmed := s.confirmHighRisk(trimmed, autoConfirm)
		if !confirmed {
			fmt.Fprintln(s.out, "Command cancelled")
			record.Cancelled = true
			record.DurationMS = time.Since(started).Milliseconds()
			s.saveAudit(record)
			return true
		}
	}

	outcome := s.runner.Run(context.Background(), trimmed, s.cfg.TimeoutDuration())
	if outcome.Stdout != "" {
		fmt.Fprint(s.out, outcome.Stdout)
	}
	if outcome.Stderr != "" {
		fmt.Fprint(s.errOut, outcome.Stderr)
	}
	if outcome.Failed() {
		fmt.Fprintf(s.errOut, "termsh: %s\n", outcome.Failure.Error())
	}

	record.ExitCode = outcome.ExitCode
	record.DurationMS = outcome.DurationMS
	s.saveAudit(record)
	return true
}

// confirmHighRisk applies the confirmation gate for external commands that
// the classifier flagged. Auto-confirm answers the gate with a visible
// notice; it never skips it silently. Without a usable prompter the command
// is refused rather than run unconfirmed.
func (s *Service) confirmHighRisk(command string, autoConfirm bool) bool {
	question := fmt.Sprintf("High-risk command detected: %q. Execute anyway? (y/N) ", command)
	if autoConfirm {
		fmt.Fprintf(s.out, "Auto-confirmed high-risk command: %q\n", command)
		return true
	}
	if s.prompter == nil || !s.prompter.Enabled() {
		fmt.Fprintln(s.errOut, "termsh: high-risk command refused: no interactive terminal to confirm on (use -y to auto-confirm)")
		return false
	}
	confirmed, err := s.prompter.Confirm(question)
	if err != nil {
		fmt.Fprintf(s.errOut, "termsh: confirmation failed: %v\n", err)
		return false
	}
	return confirmed
}

// FlushHistory persists the in-memory history when saving is enabled. Safe
// to call repeatedly; the store write replaces the previous contents.
func (s *Service) FlushHistory() {
	if !s.cfg.ShouldSaveHistory() || s.store == nil {
		return
	}
	if err := s.store.Save(s.history.Entries()); err != nil {
		s.warn("could not save history", map[string]interface{}{
			"path":  s.store.Path(),
			"error": err.Error(),
		})
	}
}

// History exposes the session log for completion and the history command.
func (s *Service) History() *domain.CommandLog {
	return s.history
}

// Config returns the configuration the session was started with.
func (s *Service) Config() domain.Config {
	return s.cfg
}

func (s *Service) saveAudit(record domain.AuditRecord) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Save(record); err != nil {
		s.warn("could not write audit record", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Service) warn(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, fields)
	}
}

// firstField returns the first whitespace-delimited token of a trimmed line.
func firstField(line string) string {
	if idx := strings.IndexAny(line, " \t"); idx >= 0 {
		return line[:idx]
	}
	return line
}
