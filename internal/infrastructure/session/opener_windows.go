//go:build windows

package session

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/doeshing/shellpick/internal/domain"
)

// Open runs shell in dir on the inherited console and blocks until it exits.
// Windows consoles need no pseudo-terminal for an interactive child.
func (o *Opener) Open(ctx context.Context, shell domain.ShellName, dir string) error {
	path, err := Executable(shell)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, path)
	cmd.Dir = dir
	cmd.Env = o.environ()
	cmd.Stdin = o.Stdin
	cmd.Stdout = o.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", path, err)
	}
	o.debug("shell started", map[string]interface{}{"path": path, "dir": dir, "pid": cmd.Process.Pid})
	return cmd.Wait()
}
