//go:build !windows && !aix && !android && !darwin && !dragonfly && !freebsd && !hurd && !illumos && !ios && !linux && !netbsd && !openbsd && !solaris

package platform

import "github.com/doeshing/shellpick/internal/domain"

// No shell registry convention exists here (plan9, js, wasip1); discovery fails closed.
const currentFamily = domain.StrategyNone
