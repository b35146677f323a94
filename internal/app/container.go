// Package app wires the adapters into a running application. It is the only
// place that knows every concrete type; the layers below it talk through the
// ports package.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/doeshing/termsh/internal/application/dispatch"
	"github.com/doeshing/termsh/internal/application/doctor"
	"github.com/doeshing/termsh/internal/domain"
	"github.com/doeshing/termsh/internal/infrastructure/builtin"
	"github.com/doeshing/termsh/internal/infrastructure/config"
	"github.com/doeshing/termsh/internal/infrastructure/executor"
	"github.com/doeshing/termsh/internal/infrastructure/history"
	"github.com/doeshing/termsh/internal/infrastructure/security"
	"github.com/doeshing/termsh/internal/pkg/filesystem"
	"github.com/doeshing/termsh/internal/pkg/logger"
	"github.com/doeshing/termsh/internal/ports"
)

// Options adjust the wiring for flags and tests.
type Options struct {
	// ConfigPath overrides the default config location when non-empty.
	ConfigPath string
	// Prompter answers confirmation questions; nil disables interactive
	// confirmation (high-risk commands are then refused unless auto-confirmed).
	Prompter ports.ConfirmationPrompter
	// NoHistory disables history persistence for this session regardless of
	// the configured save_history value.
	NoHistory bool
	// Verbose enables debug logging.
	Verbose bool
	Out     io.Writer
	Err     io.Writer
}

// Container holds the wired application.
type Container struct {
	Config   domain.Config
	Loader   *config.FileLoader
	Logger   ports.Logger
	Strategy executor.InvocationStrategy
	History  ports.HistoryStore
	Audit    ports.AuditRepository
	Table    *builtin.Table
	Dispatch *dispatch.Service
	Doctor   *doctor.Service
	// ConfigWarning is set when the config file could not be used and the
	// session fell back to defaults.
	ConfigWarning string
}

// New builds the full dependency graph. A broken config file degrades to the
// embedded defaults with a recorded warning instead of refusing to start.
func New(opts Options) *Container {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	log := logger.NewStd(opts.Verbose)
	loader := config.NewFileLoader(opts.ConfigPath)

	cfg, err := loader.Load(context.Background())
	warning := ""
	if err != nil {
		cfg = config.DefaultConfig()
		warning = fmt.Sprintf("config unusable, using defaults: %v", err)
		log.Warn("config unusable, using defaults", map[string]interface{}{"error": err.Error()})
	}

	classifier := security.NewClassifier(cfg.HighRiskCommands)
	strategy := executor.ForPlatform(runtime.GOOS)
	runner := executor.NewRunner(strategy, log)

	var store ports.HistoryStore
	if !opts.NoHistory && cfg.ShouldSaveHistory() {
		store = history.NewFileStore()
	}
	audit := history.NewSQLiteStore()

	table := builtin.NewTable(builtin.Deps{
		Runner:   runner,
		Prompter: opts.Prompter,
		Logger:   log,
		Out:      opts.Out,
		Err:      opts.Err,
		Timeout:  cfg.TimeoutDuration(),
	})

	dispatchSvc := dispatch.NewService(dispatch.Params{
		Config:     cfg,
		Table:      table,
		Classifier: classifier,
		Runner:     runner,
		Prompter:   opts.Prompter,
		Store:      store,
		Audit:      audit,
		Logger:     log,
		Out:        opts.Out,
		Err:        opts.Err,
	})

	doctorSvc := doctor.NewService(doctor.Params{
		Provider:     loader,
		ConfigPath:   loader.Path(),
		DataDir:      filesystem.AppDataDir(),
		History:      store,
		Audit:        audit,
		Classifier:   classifier,
		StrategyName: strategy.Name(),
	})

	return &Container{
		Config:        cfg,
		Loader:        loader,
		Logger:        log,
		Strategy:      strategy,
		History:       store,
		Audit:         audit,
		Table:         table,
		Dispatch:      dispatchSvc,
		Doctor:        doctorSvc,
		ConfigWarning: warning,
	}
}

// HistoryFilePath is where readline keeps its arrow-key history, separate
// from the dispatcher's own history file.
func HistoryFilePath() string {
	return filepath.Join(filesystem.AppDataDir(), "readline_history")
}
