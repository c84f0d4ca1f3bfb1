package domain

// Strategy names accepted in configuration and on the command line.
const (
	StrategyAuto    = "auto"
	StrategyWindows = "windows"
	StrategyPosix   = "posix"
	StrategyNone    = "none"
)

// Config mirrors ~/.shellpick/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Discovery           DiscoverySettings `yaml:"discovery"`
	History             HistorySettings   `yaml:"history"`
	Session             SessionSettings   `yaml:"session"`
}

// DiscoverySettings controls how shells are enumerated.
type DiscoverySettings struct {
	Strategy     string   `yaml:"strategy"`
	RegistryFile string   `yaml:"registry_file"`
	PathEnv      string   `yaml:"path_env"`
	Catalog      []string `yaml:"catalog,omitempty"`
}

// HistorySettings configures the scan log.
type HistorySettings struct {
	Enabled    bool `yaml:"enabled"`
	RetainDays int  `yaml:"retain_days"`
}

// SessionSettings configures shells opened through `shellpick open`.
type SessionSettings struct {
	Term string `yaml:"term"`
}

// CatalogOrDefault returns the configured catalog, or the built-in one when unset.
func (d DiscoverySettings) CatalogOrDefault() []string {
	if len(d.Catalog) == 0 {
		return DefaultCatalog()
	}
	out := make([]string, len(d.Catalog))
	copy(out, d.Catalog)
	return out
}
