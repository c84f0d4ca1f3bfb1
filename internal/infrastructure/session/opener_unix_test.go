//go:build !windows

package session

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/term"

	"github.com/doeshing/shellpick/internal/domain"
)

func TestOpenRunsShellInDirectory(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-shell")
	body := "#!/bin/sh\necho \"cwd=$(pwd) term=$TERM\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	opener := &Opener{Term: "dumb", Stdout: &out}
	if err := opener.Open(context.Background(), domain.ShellName(script), dir); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	resolved, _ := filepath.EvalSymlinks(dir)
	got := out.String()
	if !strings.Contains(got, "term=dumb") {
		t.Errorf("output %q missing TERM", got)
	}
	if !strings.Contains(got, "cwd="+dir) && !strings.Contains(got, "cwd="+resolved) {
		t.Errorf("output %q missing working directory %s", got, dir)
	}
}

func TestOpenReportsExitStatus(t *testing.T) {
	script := filepath.Join(t.TempDir(), "failing-shell")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	err := (&Opener{Term: "dumb", Stdout: &bytes.Buffer{}}).Open(context.Background(), domain.ShellName(script), "")
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Fatalf("Open() error = %v, want exit status 3", err)
	}
}

func TestOpenReapsShellWhenRawModeFails(t *testing.T) {
	script := filepath.Join(t.TempDir(), "slow-shell")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexec sleep 30\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	stdin, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer stdin.Close()
	defer w.Close()

	isTerminal = func(int) bool { return true }
	makeRaw = func(int) (*term.State, error) { return nil, errors.New("not a tty") }
	t.Cleanup(func() {
		isTerminal = term.IsTerminal
		makeRaw = term.MakeRaw
	})

	done := make(chan error, 1)
	go func() {
		opener := &Opener{Term: "dumb", Stdin: stdin, Stdout: &bytes.Buffer{}}
		done <- opener.Open(context.Background(), domain.ShellName(script), "")
	}()

	select {
	case err := <-done:
		if err == nil || !strings.Contains(err.Error(), "raw mode") {
			t.Fatalf("Open() error = %v, want raw mode error", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Open() did not return after raw mode failed")
	}
}

func TestExecutable(t *testing.T) {
	if got, err := Executable("/bin/sh"); err != nil || got != "/bin/sh" {
		t.Errorf("Executable(/bin/sh) = %q, %v", got, err)
	}
	if _, err := Executable("definitely-not-a-shell-xyz"); err == nil {
		t.Error("expected lookup error for unknown shell")
	}
}
