package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/infrastructure/discovery"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateDiscovery(cfg.Discovery); err != nil {
		return err
	}
	if err := validateHistory(cfg.History); err != nil {
		return err
	}
	return nil
}

func validateDiscovery(d domain.DiscoverySettings) error {
	if !discovery.ValidStrategy(d.Strategy) {
		return fmt.Errorf("discovery.strategy must be auto|windows|posix|none, got %s", d.Strategy)
	}
	if d.RegistryFile != "" && !filepath.IsAbs(d.RegistryFile) && !strings.HasPrefix(d.RegistryFile, "/") && !strings.HasPrefix(d.RegistryFile, "~/") {
		return fmt.Errorf("discovery.registry_file must be an absolute path, got %s", d.RegistryFile)
	}
	for i, entry := range d.Catalog {
		if strings.TrimSpace(entry) == "" {
			return fmt.Errorf("discovery.catalog[%d] is empty", i)
		}
		if strings.ContainsAny(entry, `/\`) {
			return fmt.Errorf("discovery.catalog[%d] must be a file name, got %s", i, entry)
		}
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	if history.RetainDays < 0 {
		return fmt.Errorf("history.retain_days must be >= 0")
	}
	return nil
}
