package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	rootassets "github.com/doeshing/shellpick/assets"
	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/pkg/filesystem"
	"github.com/doeshing/shellpick/internal/ports"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "SHELLPICK_CONFIG"

// FileLoader loads YAML configuration from ~/.shellpick/config.yaml (overridable via SHELLPICK_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file yields the defaults and
// is not created; use Init for that.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return hydrateDefaults(cfg), nil
}

// Init writes the default configuration. An existing file is kept unless force is set.
func (l *FileLoader) Init(force bool) (string, bool, error) {
	path := l.Path()
	if _, err := os.Stat(path); err == nil && !force {
		return path, false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return path, false, err
	}
	if err := os.WriteFile(path, rootassets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
		return path, false, err
	}
	return path, true, nil
}

// Path returns the resolved config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.AppDir(), "config.yaml")
}

// DefaultConfig mirrors assets/defaults/config.yaml.
func DefaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Discovery: domain.DiscoverySettings{
			Strategy:     domain.StrategyAuto,
			RegistryFile: domain.DefaultRegistryFile,
			PathEnv:      domain.DefaultPathEnv,
		},
		History: domain.HistorySettings{
			Enabled:    true,
			RetainDays: domain.DefaultHistoryRetainDays,
		},
		Session: domain.SessionSettings{
			Term: domain.DefaultSessionTerm,
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Discovery.Strategy == "" {
		cfg.Discovery.Strategy = domain.StrategyAuto
	}
	if cfg.Discovery.RegistryFile == "" {
		cfg.Discovery.RegistryFile = domain.DefaultRegistryFile
	} else {
		cfg.Discovery.RegistryFile = filesystem.ExpandPath(cfg.Discovery.RegistryFile)
	}
	if cfg.Discovery.PathEnv == "" {
		cfg.Discovery.PathEnv = domain.DefaultPathEnv
	}
	if cfg.Session.Term == "" {
		cfg.Session.Term = domain.DefaultSessionTerm
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
