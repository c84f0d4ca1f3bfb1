// Package session starts an interactive shell chosen from the enumerated list.
package session

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/ports"
)

// Opener runs a shell attached to the caller's terminal.
type Opener struct {
	Term   string
	Stdin  *os.File
	Stdout io.Writer
	Logger ports.Logger
}

// NewOpener attaches to the process standard streams.
func NewOpener(termName string, logger ports.Logger) *Opener {
	if termName == "" {
		termName = domain.DefaultSessionTerm
	}
	return &Opener{Term: termName, Stdin: os.Stdin, Stdout: os.Stdout, Logger: logger}
}

// Executable resolves a listed shell to a runnable path. Registered absolute
// paths are used as is; display names are looked up on the search path.
func Executable(shell domain.ShellName) (string, error) {
	name := string(shell)
	if filepath.IsAbs(name) {
		return name, nil
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", name, err)
	}
	return path, nil
}

func (o *Opener) environ() []string {
	return append(os.Environ(), "TERM="+o.Term)
}

func (o *Opener) debug(msg string, fields map[string]interface{}) {
	if o.Logger != nil {
		o.Logger.Debug(msg, fields)
	}
}

var _ ports.SessionOpener = (*Opener)(nil)
