//go:build windows

package platform

import "github.com/doeshing/shellpick/internal/domain"

const currentFamily = domain.StrategyWindows
