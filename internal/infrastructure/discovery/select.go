package discovery

import (
	"fmt"
	"strings"

	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/infrastructure/platform"
	"github.com/doeshing/shellpick/internal/ports"
)

// Deps carries what the strategies read from the host.
type Deps struct {
	Env      ports.Environment
	FS       ports.FileSystem
	Settings domain.DiscoverySettings
}

// Select returns the strategy for name. "auto" (or empty) resolves to the
// family this binary was built for.
func Select(name string, deps Deps) (ports.DiscoveryStrategy, error) {
	resolved := strings.ToLower(strings.TrimSpace(name))
	if resolved == "" || resolved == domain.StrategyAuto {
		resolved = platform.CurrentFamily()
	}

	switch resolved {
	case domain.StrategyWindows:
		w := NewWindowsStyle(deps.Env, deps.FS)
		if deps.Settings.PathEnv != "" {
			w.PathEnv = deps.Settings.PathEnv
		}
		w.Catalog = deps.Settings.CatalogOrDefault()
		return w, nil
	case domain.StrategyPosix:
		p := NewPosixStyle(deps.FS)
		if deps.Settings.RegistryFile != "" {
			p.RegistryFile = deps.Settings.RegistryFile
		}
		return p, nil
	case domain.StrategyNone:
		return Empty{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedStrategy, name)
	}
}

// ValidStrategy reports whether name is accepted by Select.
func ValidStrategy(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", domain.StrategyAuto, domain.StrategyWindows, domain.StrategyPosix, domain.StrategyNone:
		return true
	default:
		return false
	}
}
