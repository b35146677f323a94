// Package doctor runs environment diagnostics so users can self-serve the
// usual "why does my shell misbehave" questions.
package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/doeshing/termsh/internal/domain"
	"github.com/doeshing/termsh/internal/ports"
)

// Params carries the collaborators the diagnostics inspect.
type Params struct {
	Provider     ports.ConfigProvider
	ConfigPath   string
	DataDir      string
	History      ports.HistoryStore
	Audit        ports.AuditRepository
	Classifier   ports.RiskClassifier
	StrategyName string
}

// Service runs the diagnostic checks.
type Service struct {
	p Params
}

// NewService builds the doctor service.
func NewService(p Params) *Service {
	return &Service{p: p}
}

// Run executes every check and aggregates the report. Checks never abort
// each other; a broken config still lets the storage checks run.
func (s *Service) Run(ctx context.Context) domain.HealthReport {
	report := domain.HealthReport{}
	report.Checks = append(report.Checks, s.checkConfig(ctx))
	report.Checks = append(report.Checks, s.checkDataDir())
	report.Checks = append(report.Checks, s.checkHistory())
	report.Checks = append(report.Checks, s.checkAudit())
	report.Checks = append(report.Checks, s.checkClassifier())
	report.Checks = append(report.Checks, s.checkPlatform())
	return report
}

func (s *Service) checkConfig(ctx context.Context) domain.HealthCheck {
	check := domain.HealthCheck{Name: "configuration"}
	if s.p.Provider == nil {
		check.Status = domain.HealthError
		check.Details = "no configuration provider wired"
		return check
	}
	cfg, err := s.p.Provider.Load(ctx)
	if err != nil {
		check.Status = domain.HealthError
		check.Details = fmt.Sprintf("cannot load %s: %v", s.p.ConfigPath, err)
		return check
	}
	check.Status = domain.HealthOK
	check.Details = fmt.Sprintf("%s (timeout %ds, %d custom high-risk patterns)",
		s.p.ConfigPath, cfg.CmdTimeoutSeconds, len(cfg.HighRiskCommands))
	return check
}

func (s *Service) checkDataDir() domain.HealthCheck {
	check := domain.HealthCheck{Name: "data directory"}
	if err := os.MkdirAll(s.p.DataDir, domain.DirectoryPermissions); err != nil {
		check.Status = domain.HealthError
		check.Details = fmt.Sprintf("cannot create %s: %v", s.p.DataDir, err)
		return check
	}
	probe := filepath.Join(s.p.DataDir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), domain.SecureFilePermissions); err != nil {
		check.Status = domain.HealthError
		check.Details = fmt.Sprintf("%s is not writable: %v", s.p.DataDir, err)
		return check
	}
	os.Remove(probe)
	check.Status = domain.HealthOK
	check.Details = s.p.DataDir
	return check
}

func (s *Service) checkHistory() domain.HealthCheck {
	check := domain.HealthCheck{Name: "history store"}
	if s.p.History == nil {
		check.Status = domain.HealthWarn
		check.Details = "history persistence disabled"
		return check
	}
	entries, err := s.p.History.Load()
	if err != nil {
		check.Status = domain.HealthError
		check.Details = fmt.Sprintf("cannot read %s: %v", s.p.History.Path(), err)
		return check
	}
	check.Status = domain.HealthOK
	check.Details = fmt.Sprintf("%s (%d entries)", s.p.History.Path(), len(entries))
	return check
}

func (s *Service) checkAudit() domain.HealthCheck {
	check := domain.HealthCheck{Name: "audit log"}
	if s.p.Audit == nil {
		check.Status = domain.HealthWarn
		check.Details = "audit logging disabled"
		return check
	}
	if _, err := s.p.Audit.Records(1, ""); err != nil {
		check.Status = domain.HealthError
		check.Details = fmt.Sprintf("cannot query %s: %v", s.p.Audit.Path(), err)
		return check
	}
	check.Status = domain.HealthOK
	check.Details = s.p.Audit.Path()
	return check
}

func (s *Service) checkClassifier() domain.HealthCheck {
	check := domain.HealthCheck{Name: "risk classifier"}
	if s.p.Classifier == nil || !s.p.Classifier.IsHighRisk("rm -rf /") {
		check.Status = domain.HealthError
		check.Details = "built-in dangerous patterns are not being flagged"
		return check
	}
	check.Status = domain.HealthOK
	check.Details = "built-in dangerous patterns flagged correctly"
	return check
}

func (s *Service) checkPlatform() domain.HealthCheck {
	return domain.HealthCheck{
		Name:    "invocation strategy",
		Status:  domain.HealthOK,
		Details: s.p.StrategyName,
	}
}
