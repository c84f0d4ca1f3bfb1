//go:build aix || android || darwin || dragonfly || freebsd || hurd || illumos || ios || linux || netbsd || openbsd || solaris

package platform

import "github.com/doeshing/shellpick/internal/domain"

const currentFamily = domain.StrategyPosix
