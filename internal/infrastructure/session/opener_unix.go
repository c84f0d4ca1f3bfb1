//go:build !windows

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/doeshing/shellpick/internal/domain"
)

// Terminal hooks, replaced in tests.
var (
	isTerminal = term.IsTerminal
	makeRaw    = term.MakeRaw
)

// Open starts shell in a pseudo-terminal rooted at dir and blocks until it exits.
func (o *Opener) Open(ctx context.Context, shell domain.ShellName, dir string) error {
	path, err := Executable(shell)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, path)
	cmd.Dir = dir
	cmd.Env = o.environ()

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("start %s: %w", path, err)
	}
	defer ptmx.Close()
	o.debug("shell started", map[string]interface{}{"path": path, "dir": dir, "pid": cmd.Process.Pid})

	if o.Stdin != nil && isTerminal(int(o.Stdin.Fd())) {
		resize := make(chan os.Signal, 1)
		signal.Notify(resize, syscall.SIGWINCH)
		defer func() {
			signal.Stop(resize)
			close(resize)
		}()
		go func() {
			for range resize {
				_ = pty.InheritSize(o.Stdin, ptmx)
			}
		}()
		resize <- syscall.SIGWINCH

		state, err := makeRaw(int(o.Stdin.Fd()))
		if err != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
			return fmt.Errorf("raw mode: %w", err)
		}
		defer func() { _ = term.Restore(int(o.Stdin.Fd()), state) }()
	}

	if o.Stdin != nil {
		go func() { _, _ = io.Copy(ptmx, o.Stdin) }()
	}
	if o.Stdout != nil {
		// Reading the master side fails with EIO once the shell exits.
		if _, err := io.Copy(o.Stdout, ptmx); err != nil && !errors.Is(err, syscall.EIO) {
			o.debug("pty copy ended", map[string]interface{}{"error": err.Error()})
		}
	}

	return cmd.Wait()
}
