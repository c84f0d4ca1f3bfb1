package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/ports"
)

// HostInfoFunc matches host.InfoWithContext.
type HostInfoFunc func(ctx context.Context) (*host.InfoStat, error)

// Detector implements ports.HostDetector.
type Detector struct {
	info HostInfoFunc
}

// NewDetector creates a detector backed by gopsutil.
func NewDetector() *Detector {
	return &Detector{info: host.InfoWithContext}
}

// Detect returns runtime OS and architecture, enriched with gopsutil host details.
// If gopsutil fails the runtime fields are still returned; only a cancelled
// context is reported as an error.
func (d *Detector) Detect(ctx context.Context) (domain.HostInfo, error) {
	info := domain.HostInfo{
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
		Family: CurrentFamily(),
	}
	if d.info == nil {
		return info, nil
	}

	stat, err := d.info(ctx)
	if err != nil || stat == nil {
		if ctx.Err() != nil {
			return domain.HostInfo{}, fmt.Errorf("host detection cancelled: %w", ctx.Err())
		}
		return info, nil
	}

	info.Hostname = stat.Hostname
	info.Platform = stat.Platform
	info.PlatformFamily = stat.PlatformFamily
	info.PlatformVersion = stat.PlatformVersion
	info.KernelVersion = stat.KernelVersion
	return info, nil
}

var _ ports.HostDetector = (*Detector)(nil)
