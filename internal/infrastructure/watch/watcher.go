// Package watch re-runs shell enumeration when the files it depends on change.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/ports"
)

// ListFunc produces a fresh shell list.
type ListFunc func(ctx context.Context) domain.ShellList

// Watcher watches the shell registry directory and the search path directories.
type Watcher struct {
	List  ListFunc
	Paths []string
	// Relevant filters event paths; nil accepts every event.
	Relevant func(name string) bool
	Debounce time.Duration
	Logger   ports.Logger
}

// Run emits the initial list, then a new list each time it changes, until ctx ends.
// Paths that do not exist are skipped.
func (w *Watcher) Run(ctx context.Context, onChange func(domain.ShellList)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for _, dir := range uniqueDirs(w.Paths) {
		if err := watcher.Add(dir); err != nil {
			w.debug("skipping watch path", map[string]interface{}{"path": dir, "error": err.Error()})
			continue
		}
		watched++
	}
	w.debug("watching for shell changes", map[string]interface{}{"paths": watched})

	last := w.List(ctx)
	onChange(last)

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = domain.DefaultWatchDebounce
	}
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if w.Relevant != nil && !w.Relevant(event.Name) {
				continue
			}
			w.debug("file event", map[string]interface{}{"op": event.Op.String(), "name": event.Name})
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.warn("watch error", err)
		case <-timer.C:
			next := w.List(ctx)
			if !slices.Equal(next.Shells, last.Shells) || next.Strategy != last.Strategy {
				last = next
				onChange(next)
			}
		}
	}
}

// Paths returns the directories worth watching for a discovery configuration.
func Paths(settings domain.DiscoverySettings, strategy string, env ports.Environment) []string {
	switch strategy {
	case domain.StrategyPosix:
		return []string{filepath.Dir(settings.RegistryFile)}
	case domain.StrategyWindows:
		if env == nil {
			return nil
		}
		var dirs []string
		for _, part := range strings.Split(env.Getenv(settings.PathEnv), domain.WindowsPathListSeparator) {
			part = strings.TrimRight(part, `\`)
			if strings.TrimSpace(part) != "" {
				dirs = append(dirs, part)
			}
		}
		return dirs
	default:
		return nil
	}
}

// Filter returns the event filter for a discovery configuration: the registry
// file itself on POSIX hosts, catalog executables on Windows hosts.
func Filter(settings domain.DiscoverySettings, strategy string) func(name string) bool {
	switch strategy {
	case domain.StrategyPosix:
		registry := settings.RegistryFile
		if registry == "" {
			registry = domain.DefaultRegistryFile
		}
		registry = filepath.Clean(registry)
		return func(name string) bool {
			return filepath.Clean(name) == registry
		}
	case domain.StrategyWindows:
		catalog := make(map[string]bool)
		for _, entry := range settings.CatalogOrDefault() {
			catalog[strings.ToLower(entry)] = true
		}
		return func(name string) bool {
			return catalog[strings.ToLower(filepath.Base(name))]
		}
	default:
		return func(string) bool { return false }
	}
}

func uniqueDirs(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var out []string
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		if info, err := os.Stat(p); err != nil || !info.IsDir() {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (w *Watcher) debug(msg string, fields map[string]interface{}) {
	if w.Logger != nil {
		w.Logger.Debug(msg, fields)
	}
}

func (w *Watcher) warn(msg string, err error) {
	if w.Logger != nil {
		w.Logger.Warn(msg, map[string]interface{}{"error": err.Error()})
	}
}
