package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Discovery defaults
const (
	// DefaultRegistryFile is the POSIX shell registry
	DefaultRegistryFile = "/etc/shells"
	// DefaultPathEnv is the executable search path variable
	DefaultPathEnv = "PATH"
	// WindowsPathListSeparator splits the search path on Windows-like hosts
	WindowsPathListSeparator = ";"
)

// History constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
	// DefaultHistoryRetainDays is the default number of days to retain history
	DefaultHistoryRetainDays = 30
)

// Watch constants
const (
	// DefaultWatchDebounce coalesces bursts of filesystem events
	DefaultWatchDebounce = 200 * time.Millisecond
)

// Session constants
const (
	// DefaultSessionTerm is exported to shells opened in a pseudo-terminal
	DefaultSessionTerm = "xterm-256color"
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
