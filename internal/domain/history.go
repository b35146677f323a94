package domain

import "time"

// CommandLog is the in-memory session history: append-only, with immediately
// consecutive duplicates collapsed and a hard cap that drops the oldest
// entries first.
type CommandLog struct {
	entries []string
	cap     int
}

// NewCommandLog builds a log bounded to max entries (DefaultMaxHistorySize
// when max is not positive).
func NewCommandLog(max int) *CommandLog {
	if max <= 0 {
		max = DefaultMaxHistorySize
	}
	return &CommandLog{cap: max}
}

// Seed replaces the log contents with previously persisted entries,
// applying the cap from the tail.
func (l *CommandLog) Seed(entries []string) {
	if len(entries) > l.cap {
		entries = entries[len(entries)-l.cap:]
	}
	l.entries = append(l.entries[:0], entries...)
}

// Append records a command. Blank lines are ignored; a command identical to
// the immediately preceding entry is collapsed. Deduplication applies only
// to consecutive repeats: two occurrences separated by another command both
// remain.
func (l *CommandLog) Append(command string) {
	if command == "" {
		return
	}
	if n := len(l.entries); n > 0 && l.entries[n-1] == command {
		return
	}
	l.entries = append(l.entries, command)
	if len(l.entries) > l.cap {
		l.entries = l.entries[len(l.entries)-l.cap:]
	}
}

// Entries returns a copy of the retained history, oldest first.
func (l *CommandLog) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained entries.
func (l *CommandLog) Len() int {
	return len(l.entries)
}

// AuditRecord captures one dispatched command for the audit store.
type AuditRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	Command    string    `json:"command"`
	Builtin    bool      `json:"builtin"`
	HighRisk   bool      `json:"high_risk"`
	Cancelled  bool      `json:"cancelled"`
	ExitCode   int       `json:"exit_code"`
	DurationMS int64     `json:"duration_ms"`
}
