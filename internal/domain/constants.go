package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Configuration defaults
const (
	// DefaultPrompt is the PowerShell-style prompt template.
	DefaultPrompt = "PS %dir%> "
	// DefaultTimeoutSeconds bounds external commands when the config is silent.
	DefaultTimeoutSeconds = 15
	// DefaultMaxHistorySize caps the in-memory and persisted command log.
	DefaultMaxHistorySize = 1000
)

// History display constants
const (
	// DefaultHistoryLimit is the default number of audit records to display
	DefaultHistoryLimit = 20
	// DefaultHistorySearchLimit is the default number of search results to return
	DefaultHistorySearchLimit = 50
)

// Time formats
const (
	// ListingTimestampFormat renders modification times in directory listings.
	ListingTimestampFormat = "2006-01-02 15:04:05"
)
