// Package enumerate runs the configured discovery strategy for callers such as the CLI.
package enumerate

import (
	"context"
	"time"

	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/ports"
)

// Service lists installed shells. It never returns an error: an empty list is
// the worst outcome and means "no shells detected".
type Service struct {
	Strategy ports.DiscoveryStrategy
	Logger   ports.Logger
	Recorder ports.ScanRecorder
	Now      func() time.Time
}

// List runs the strategy once and records the result when a recorder is set.
func (s *Service) List(ctx context.Context) domain.ShellList {
	list := s.Scan(ctx)
	s.Record(list)
	return list
}

// Scan runs the strategy without recording the result.
func (s *Service) Scan(ctx context.Context) domain.ShellList {
	list := domain.ShellList{
		Strategy:  domain.StrategyNone,
		Shells:    []domain.ShellName{},
		ScannedAt: s.now(),
	}
	if s.Strategy == nil {
		s.debug("no discovery strategy configured", nil)
		return list
	}
	list.Strategy = s.Strategy.Name()
	if shells := s.Strategy.Discover(ctx); shells != nil {
		list.Shells = shells
	}
	s.debug("enumerated shells", map[string]interface{}{
		"strategy": list.Strategy,
		"count":    len(list.Shells),
	})
	return list
}

// Record saves list to the recorder. Failures are logged, never returned.
func (s *Service) Record(list domain.ShellList) {
	if s.Recorder == nil {
		return
	}
	record := domain.ScanRecord{
		Timestamp: list.ScannedAt,
		Strategy:  list.Strategy,
		Shells:    list.Shells,
		Count:     len(list.Shells),
	}
	if err := s.Recorder.Save(record); err != nil && s.Logger != nil {
		s.Logger.Warn("failed to record scan", map[string]interface{}{"error": err.Error()})
	}
}

// Shells is List without metadata.
func (s *Service) Shells(ctx context.Context) []domain.ShellName {
	return s.List(ctx).Shells
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) debug(msg string, fields map[string]interface{}) {
	if s.Logger != nil {
		s.Logger.Debug(msg, fields)
	}
}
