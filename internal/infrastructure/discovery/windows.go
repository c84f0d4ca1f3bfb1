package discovery

import (
	"context"
	"strings"

	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/ports"
)

// WindowsStyle finds catalog executables on the search path.
type WindowsStyle struct {
	Env     ports.Environment
	FS      ports.FileSystem
	PathEnv string
	Catalog []string
}

// NewWindowsStyle builds the strategy with the built-in catalog and PATH.
func NewWindowsStyle(env ports.Environment, fsys ports.FileSystem) *WindowsStyle {
	return &WindowsStyle{
		Env:     env,
		FS:      fsys,
		PathEnv: domain.DefaultPathEnv,
		Catalog: domain.DefaultCatalog(),
	}
}

// Name implements ports.DiscoveryStrategy.
func (w *WindowsStyle) Name() string {
	return domain.StrategyWindows
}

// Discover implements ports.DiscoveryStrategy. Results follow catalog order and
// each entry appears at most once.
func (w *WindowsStyle) Discover(ctx context.Context) []domain.ShellName {
	dirs := w.searchDirectories()
	found := make([]domain.ShellName, 0, len(w.Catalog))
	if len(dirs) == 0 {
		return found
	}
	for _, entry := range w.Catalog {
		if ctx.Err() != nil {
			return found
		}
		if w.locate(entry, dirs) {
			found = append(found, domain.DisplayName(entry))
		}
	}
	return found
}

func (w *WindowsStyle) locate(entry string, dirs []domain.SearchDirectory) bool {
	for _, dir := range dirs {
		if _, err := w.FS.Stat(candidatePath(dir, entry)); err == nil {
			return true
		}
	}
	return false
}

func (w *WindowsStyle) searchDirectories() []domain.SearchDirectory {
	if w.Env == nil {
		return nil
	}
	key := w.PathEnv
	if key == "" {
		key = domain.DefaultPathEnv
	}
	raw := w.Env.Getenv(key)
	if raw == "" {
		return nil
	}
	var dirs []domain.SearchDirectory
	for _, part := range strings.Split(raw, domain.WindowsPathListSeparator) {
		// Blank entries would otherwise probe the filesystem root.
		if strings.TrimSpace(part) == "" {
			continue
		}
		dirs = append(dirs, domain.SearchDirectory(part))
	}
	return dirs
}

func candidatePath(dir domain.SearchDirectory, entry string) string {
	return strings.TrimRight(string(dir), `\`) + "/" + entry
}

var _ ports.DiscoveryStrategy = (*WindowsStyle)(nil)
