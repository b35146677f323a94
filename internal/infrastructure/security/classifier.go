// Package security flags command lines that can cause irreversible data loss.
package security

import (
	"strings"

	"github.com/doeshing/termsh/internal/ports"
)

// Classifier implements the RiskClassifier port with substring matching over
// a fixed fragment set plus a user-configured list. Matching is substring,
// not token: a command containing a risky fragment inside a longer token is
// still flagged.
type Classifier struct {
	custom []string
}

// builtinFragments covers recursive and forced deletion, raw disk writes,
// filesystem formatting and suspicious redirection on both platform families.
var builtinFragments = []string{
	// Linux/macOS
	"rm -rf", "rm -r *", "sudo rm", "dd if=", "mkfs.",
	// Windows
	"del *", "rd /s /q", "format ", "rmdir /s /q",
	// redirection onto device-like targets
	">:",
}

// NewClassifier builds a classifier with the configured extra fragments.
func NewClassifier(custom []string) *Classifier {
	return &Classifier{custom: custom}
}

// IsHighRisk implements ports.RiskClassifier.
func (c *Classifier) IsHighRisk(command string) bool {
	lowered := strings.ToLower(strings.TrimSpace(command))
	if lowered == "" {
		return false
	}
	for _, fragment := range builtinFragments {
		if strings.Contains(lowered, fragment) {
			return true
		}
	}
	for _, fragment := range c.custom {
		if fragment == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(fragment)) {
			return true
		}
	}
	return false
}

var _ ports.RiskClassifier = (*Classifier)(nil)
