package discovery

import (
	"context"
	"strings"

	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/ports"
)

// PosixStyle reads the shell registry file.
type PosixStyle struct {
	FS           ports.FileSystem
	RegistryFile string
}

// NewPosixStyle builds the strategy reading /etc/shells.
func NewPosixStyle(fsys ports.FileSystem) *PosixStyle {
	return &PosixStyle{FS: fsys, RegistryFile: domain.DefaultRegistryFile}
}

// Name implements ports.DiscoveryStrategy.
func (p *PosixStyle) Name() string {
	return domain.StrategyPosix
}

// Discover implements ports.DiscoveryStrategy. Registered paths are returned
// verbatim in file order, without existence checks or deduplication.
func (p *PosixStyle) Discover(ctx context.Context) []domain.ShellName {
	found := []domain.ShellName{}
	if ctx.Err() != nil || p.FS == nil {
		return found
	}
	path := p.RegistryFile
	if path == "" {
		path = domain.DefaultRegistryFile
	}
	data, err := p.FS.ReadFile(path)
	if err != nil {
		return found
	}
	return ParseRegistry(string(data))
}

// ParseRegistry keeps the lines of a shell registry that start with "/".
func ParseRegistry(contents string) []domain.ShellName {
	found := []domain.ShellName{}
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, "/") {
			found = append(found, domain.ShellName(line))
		}
	}
	return found
}

var _ ports.DiscoveryStrategy = (*PosixStyle)(nil)
