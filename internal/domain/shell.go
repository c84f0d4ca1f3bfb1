package domain

import (
	"strings"
	"time"
)

// ShellName is the display identifier of a command-line interpreter.
// Windows-like discovery yields bare names ("bash"); POSIX-like discovery
// yields the registered absolute path ("/bin/bash").
type ShellName string

// String returns the display form.
func (s ShellName) String() string {
	return string(s)
}

// SearchDirectory is one entry of the executable search path.
type SearchDirectory string

// ExecutableSuffix is stripped from catalog entries before display.
const ExecutableSuffix = ".exe"

// KnownShellCatalog lists the interpreters probed on Windows-like hosts, in result order.
var KnownShellCatalog = []string{
	"powershell.exe",
	"pwsh.exe",
	"cmd.exe",
	"wsl.exe",
	"bash.exe",
	"zsh.exe",
	"fish.exe",
	"nu.exe",
	"git.exe",
}

// DefaultCatalog returns a copy of KnownShellCatalog.
func DefaultCatalog() []string {
	out := make([]string, len(KnownShellCatalog))
	copy(out, KnownShellCatalog)
	return out
}

// DisplayName strips a trailing executable suffix (case-insensitive) from a catalog entry.
// Entries without the suffix are returned unmodified.
func DisplayName(entry string) ShellName {
	if len(entry) >= len(ExecutableSuffix) && strings.EqualFold(entry[len(entry)-len(ExecutableSuffix):], ExecutableSuffix) {
		return ShellName(entry[:len(entry)-len(ExecutableSuffix)])
	}
	return ShellName(entry)
}

// ShellList is the outcome of one enumeration call.
type ShellList struct {
	Strategy  string
	Shells    []ShellName
	ScannedAt time.Time
}

// Empty reports whether no shells were detected.
func (l ShellList) Empty() bool {
	return len(l.Shells) == 0
}

// Contains reports whether name matches a listed shell, either verbatim or by base name.
func (l ShellList) Contains(name string) bool {
	_, ok := l.Lookup(name)
	return ok
}

// Lookup returns the listed shell matching name. A bare name such as "zsh" matches
// a registered path such as "/usr/bin/zsh".
func (l ShellList) Lookup(name string) (ShellName, bool) {
	want := strings.TrimSpace(name)
	if want == "" {
		return "", false
	}
	for _, sh := range l.Shells {
		if string(sh) == want {
			return sh, true
		}
	}
	for _, sh := range l.Shells {
		if strings.EqualFold(baseName(string(sh)), want) {
			return sh, true
		}
	}
	return "", false
}

// Strings converts the list to plain strings.
func (l ShellList) Strings() []string {
	out := make([]string, 0, len(l.Shells))
	for _, sh := range l.Shells {
		out = append(out, string(sh))
	}
	return out
}

func baseName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}
