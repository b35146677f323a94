package domain

import "time"

// Normalize hydrates missing keys with defaults and enforces the config
// invariants: cmd_timeout > 0 and max_history_size > 0. It returns the
// normalized copy so callers can chain it after decoding.
func (c Config) Normalize() Config {
	if c.ConfigFormatVersion == "" {
		c.ConfigFormatVersion = "1"
	}
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if c.CmdTimeoutSeconds <= 0 {
		c.CmdTimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.SaveHistory == nil {
		enabled := true
		c.SaveHistory = &enabled
	}
	if c.MaxHistorySize <= 0 {
		c.MaxHistorySize = DefaultMaxHistorySize
	}
	return c
}

// TimeoutDuration returns the external-command timeout as a duration.
func (c Config) TimeoutDuration() time.Duration {
	seconds := c.CmdTimeoutSeconds
	if seconds <= 0 {
		seconds = DefaultTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

// ShouldSaveHistory reports whether history persistence is enabled.
func (c Config) ShouldSaveHistory() bool {
	return c.SaveHistory == nil || *c.SaveHistory
}

// HistoryCap returns the maximum number of retained history entries.
func (c Config) HistoryCap() int {
	if c.MaxHistorySize <= 0 {
		return DefaultMaxHistorySize
	}
	return c.MaxHistorySize
}
