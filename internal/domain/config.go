// Package domain defines core entities and value objects for termsh.
//
// The domain layer is independent of infrastructure concerns and represents
// pure session state and data structures: configuration, the in-memory command
// log, and execution outcomes.
package domain

// Config mirrors ~/.termsh/config.yaml.
//
// Unknown keys in the file are ignored by the YAML decoder; missing keys are
// hydrated with defaults by Normalize.
type Config struct {
	ConfigFormatVersion string   `yaml:"config_format_version"`
	Prompt              string   `yaml:"prompt"`
	CmdTimeoutSeconds   int      `yaml:"cmd_timeout"`
	SaveHistory         *bool    `yaml:"save_history"`
	HighRiskCommands    []string `yaml:"high_risk_commands"`
	MaxHistorySize      int      `yaml:"max_history_size"`
}
