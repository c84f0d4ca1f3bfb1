package doctor

import (
	"context"
	"fmt"

	appconfig "github.com/doeshing/shellpick/internal/application/config"
	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Strategy       ports.DiscoveryStrategy
	Env            ports.Environment
	FS             ports.FileSystem
	History        ports.HistoryRepository
	Host           ports.HostDetector
}

// Run executes checks and returns a report. The error is set only when the
// configuration cannot be loaded.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))
	}

	if s.Host != nil {
		if info, err := s.Host.Detect(ctx); err == nil {
			checks = append(checks, ok("Host", fmt.Sprintf("%s/%s (%s family)", info.OS, info.Arch, info.Family)))
		} else {
			checks = append(checks, warn("Host", err.Error()))
		}
	}

	if s.Strategy == nil {
		checks = append(checks, fail("Discovery", "no strategy selected"))
	} else {
		checks = append(checks, s.inputCheck(cfg.Discovery))
		shells := s.Strategy.Discover(ctx)
		if len(shells) == 0 {
			checks = append(checks, warn("Shells", "no shells detected"))
		} else {
			checks = append(checks, ok("Shells", fmt.Sprintf("%d detected via %s", len(shells), s.Strategy.Name())))
		}
	}

	if s.History != nil {
		if _, err := s.History.Records(1); err != nil {
			checks = append(checks, warn("History", err.Error()))
		} else {
			checks = append(checks, ok("History", s.History.Path()))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

// inputCheck reports on the data the selected strategy reads.
func (s *Service) inputCheck(d domain.DiscoverySettings) domain.HealthCheck {
	switch s.Strategy.Name() {
	case domain.StrategyWindows:
		if s.Env == nil || s.Env.Getenv(d.PathEnv) == "" {
			return warn("Search path", fmt.Sprintf("%s is empty", d.PathEnv))
		}
		return ok("Search path", fmt.Sprintf("%s is set", d.PathEnv))
	case domain.StrategyPosix:
		if s.FS == nil {
			return warn("Shell registry", "filesystem unavailable")
		}
		if _, err := s.FS.ReadFile(d.RegistryFile); err != nil {
			return warn("Shell registry", fmt.Sprintf("%s unreadable: %v", d.RegistryFile, err))
		}
		return ok("Shell registry", d.RegistryFile)
	default:
		return warn("Discovery", fmt.Sprintf("strategy %s lists no shells on this host", s.Strategy.Name()))
	}
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
