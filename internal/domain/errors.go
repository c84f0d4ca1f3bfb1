package domain

import "errors"

var (
	// ErrShellNotListed is returned when a requested shell was not enumerated on this host.
	ErrShellNotListed = errors.New("shell not listed on this host")
	// ErrUnsupportedStrategy is returned for an unknown discovery strategy name.
	ErrUnsupportedStrategy = errors.New("unsupported discovery strategy")
	// ErrNoShells is returned when an operation needs at least one shell and none were found.
	ErrNoShells = errors.New("no shells detected")
)
