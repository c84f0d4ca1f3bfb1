// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core depends on these abstractions; concrete adapters live in
// the infrastructure layer. Discovery strategies receive their environment and
// filesystem through ports so each variant can be exercised with fakes on any host.
package ports

import (
	"context"
	"io/fs"

	"github.com/doeshing/shellpick/internal/domain"
)

// ConfigProvider loads the latest configuration.
// Implementations typically read from ~/.shellpick/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// DiscoveryStrategy enumerates the shells installed on a host.
// Discover never fails: missing inputs produce fewer or zero results.
type DiscoveryStrategy interface {
	Name() string
	Discover(ctx context.Context) []domain.ShellName
}

// Environment reads process environment variables.
type Environment interface {
	Getenv(key string) string
}

// FileSystem is the read-only filesystem surface used by discovery.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// HostDetector reports operating system details.
type HostDetector interface {
	Detect(ctx context.Context) (domain.HostInfo, error)
}

// ScanRecorder persists enumeration runs.
type ScanRecorder interface {
	Save(domain.ScanRecord) error
}

// HistoryRepository stores and queries scan records.
type HistoryRepository interface {
	ScanRecorder
	Records(limit int) ([]domain.ScanRecord, error)
	Clear() error
	ExportJSON(dest string) error
	PruneOlderThan(days int) error
	Path() string
}

// SessionOpener starts an interactive shell.
type SessionOpener interface {
	Open(ctx context.Context, shell domain.ShellName, dir string) error
}

// Clipboard provides cross-platform clipboard integration.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
