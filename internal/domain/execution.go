package domain

import "fmt"

// FailureKind classifies why an external command could not complete.
type FailureKind string

const (
	FailureTimeout          FailureKind = "timeout"
	FailureNotFound         FailureKind = "not_found"
	FailurePermissionDenied FailureKind = "permission_denied"
	FailureOSError          FailureKind = "os_error"
	FailureUnknown          FailureKind = "unknown"
)

// ExecFailure describes a command that never produced a normal exit.
// A non-zero exit code is not a failure; it is a regular outcome whose
// stderr is simply displayed.
type ExecFailure struct {
	Kind   FailureKind
	Detail string
}

// Error implements the error interface.
func (f *ExecFailure) Error() string {
	if f.Detail == "" {
		return string(f.Kind)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

// ExecutionOutcome captures one external command run. Produced once per
// command and never retained beyond printing.
type ExecutionOutcome struct {
	ExitCode   int
	Stdout     string
	Stderr     string
	DurationMS int64
	Failure    *ExecFailure
}

// Failed reports whether the command could not complete at the OS level.
func (o ExecutionOutcome) Failed() bool {
	return o.Failure != nil
}
