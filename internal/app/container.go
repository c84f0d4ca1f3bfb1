package app

import (
	"context"

	appconfig "github.com/doeshing/shellpick/internal/application/config"
	"github.com/doeshing/shellpick/internal/application/doctor"
	"github.com/doeshing/shellpick/internal/application/enumerate"
	"github.com/doeshing/shellpick/internal/application/open"
	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/infrastructure/config"
	"github.com/doeshing/shellpick/internal/infrastructure/discovery"
	"github.com/doeshing/shellpick/internal/infrastructure/history"
	"github.com/doeshing/shellpick/internal/infrastructure/platform"
	"github.com/doeshing/shellpick/internal/infrastructure/session"
	"github.com/doeshing/shellpick/internal/pkg/filesystem"
	"github.com/doeshing/shellpick/internal/pkg/logger"
	"github.com/doeshing/shellpick/internal/ports"
)

// Options configures container construction.
type Options struct {
	Verbose    bool
	ConfigPath string
	// HistoryPath overrides the scan history database location.
	HistoryPath string
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config        domain.Config
	ConfigLoader  *config.FileLoader
	Logger        ports.Logger
	Env           ports.Environment
	FS            ports.FileSystem
	Enumerator    *enumerate.Service
	DoctorService *doctor.Service
	OpenService   *open.Service
	HistoryStore  ports.HistoryRepository
	HostDetector  ports.HostDetector
	Clipboard     ports.Clipboard
}

// BuildContainer constructs the dependency graph. The discovery strategy is
// selected once here from configuration.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		return nil, err
	}

	log := logger.NewStd(opts.Verbose)
	env := filesystem.Env{}
	fsys := filesystem.OS{}

	var historyStore ports.HistoryRepository
	if cfg.History.Enabled {
		path := opts.HistoryPath
		if path == "" {
			path = history.DefaultPath()
		}
		historyStore = history.NewSQLiteStore(path, cfg.History.RetainDays)
	}

	c := &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Logger:       log,
		Env:          env,
		FS:           fsys,
		HistoryStore: historyStore,
		HostDetector: platform.NewDetector(),
	}

	enumerator, err := c.NewEnumerator(cfg.Discovery.Strategy)
	if err != nil {
		return nil, err
	}
	c.Enumerator = enumerator

	c.DoctorService = &doctor.Service{
		ConfigProvider: cfgLoader,
		Strategy:       enumerator.Strategy,
		Env:            env,
		FS:             fsys,
		History:        historyStore,
		Host:           c.HostDetector,
	}

	c.OpenService = &open.Service{
		Lister: enumerator,
		Opener: session.NewOpener(cfg.Session.Term, log),
		FS:     fsys,
		Logger: log,
	}

	return c, nil
}

// NewEnumerator builds an enumeration service for the named strategy, sharing
// the container's environment, logger and history.
func (c *Container) NewEnumerator(strategy string) (*enumerate.Service, error) {
	selected, err := discovery.Select(strategy, discovery.Deps{
		Env:      c.Env,
		FS:       c.FS,
		Settings: c.Config.Discovery,
	})
	if err != nil {
		return nil, err
	}
	svc := &enumerate.Service{Strategy: selected, Logger: c.Logger}
	if c.HistoryStore != nil {
		svc.Recorder = c.HistoryStore
	}
	return svc, nil
}
