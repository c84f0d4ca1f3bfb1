package discovery

import (
	"context"

	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/ports"
)

// Empty is used on host families with no known discovery convention.
type Empty struct{}

// Name implements ports.DiscoveryStrategy.
func (Empty) Name() string {
	return domain.StrategyNone
}

// Discover always returns an empty list.
func (Empty) Discover(context.Context) []domain.ShellName {
	return []domain.ShellName{}
}

var _ ports.DiscoveryStrategy = Empty{}
