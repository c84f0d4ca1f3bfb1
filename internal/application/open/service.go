// Package open picks a shell from the enumerated list and starts it in the launch folder.
package open

import (
	"context"
	"fmt"

	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/pkg/filesystem"
	"github.com/doeshing/shellpick/internal/ports"
)

// Lister returns the current shell list.
type Lister interface {
	List(ctx context.Context) domain.ShellList
}

// Request describes what to open.
type Request struct {
	Shell  string
	Launch domain.LaunchRequest
	// Force allows shells that were not enumerated.
	Force bool
}

// Service resolves a Request and hands it to the opener.
type Service struct {
	Lister Lister
	Opener ports.SessionOpener
	// FS checks the launch folder; nil uses the host filesystem.
	FS     ports.FileSystem
	Logger ports.Logger
}

// Resolve returns the shell and working directory a Request maps to.
func (s *Service) Resolve(ctx context.Context, req Request) (domain.ShellName, string, error) {
	dir, err := s.workingDir(req.Launch)
	if err != nil {
		return "", "", err
	}

	list := s.Lister.List(ctx)
	if req.Shell == "" {
		if list.Empty() {
			return "", "", domain.ErrNoShells
		}
		return list.Shells[0], dir, nil
	}
	if shell, ok := list.Lookup(req.Shell); ok {
		return shell, dir, nil
	}
	if req.Force {
		return domain.ShellName(req.Shell), dir, nil
	}
	return "", "", fmt.Errorf("%w: %s", domain.ErrShellNotListed, req.Shell)
}

// Open resolves req and blocks until the shell exits.
func (s *Service) Open(ctx context.Context, req Request) error {
	shell, dir, err := s.Resolve(ctx, req)
	if err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Info("opening shell", map[string]interface{}{"shell": shell, "dir": dir})
	}
	return s.Opener.Open(ctx, shell, dir)
}

func (s *Service) workingDir(launch domain.LaunchRequest) (string, error) {
	if !launch.Present {
		return "", nil
	}
	fsys := s.FS
	if fsys == nil {
		fsys = filesystem.OS{}
	}
	info, err := fsys.Stat(launch.Folder)
	if err != nil {
		return "", fmt.Errorf("launch folder: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("launch folder %s is not a directory", launch.Folder)
	}
	return launch.Folder, nil
}
