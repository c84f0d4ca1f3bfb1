package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/doeshing/shellpick/internal/domain"
)

// MsgNoShellsDetected is printed for an empty enumeration.
const MsgNoShellsDetected = "No shells detected."

// ShellListJSON is the machine-readable form of a shell list.
type ShellListJSON struct {
	Strategy  string    `json:"strategy"`
	Shells    []string  `json:"shells"`
	ScannedAt time.Time `json:"scanned_at"`
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RenderShellList prints one shell per line, or a numbered table on a terminal.
func RenderShellList(out io.Writer, list domain.ShellList, table bool) {
	if list.Empty() {
		fmt.Fprintln(out, MsgNoShellsDetected)
		return
	}
	if !table {
		for _, sh := range list.Shells {
			fmt.Fprintln(out, sh)
		}
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSHELL")
	for i, sh := range list.Shells {
		fmt.Fprintf(tw, "%d\t%s\n", i+1, sh)
	}
	_ = tw.Flush()
	fmt.Fprintf(out, "\n%d shell(s) via %s discovery\n", len(list.Shells), list.Strategy)
}

// RenderShellListJSON prints the list as a single JSON document.
func RenderShellListJSON(out io.Writer, list domain.ShellList) error {
	return json.NewEncoder(out).Encode(ShellListJSON{
		Strategy:  list.Strategy,
		Shells:    list.Strings(),
		ScannedAt: list.ScannedAt,
	})
}

// RenderHostInfo prints host details as aligned key/value pairs.
func RenderHostInfo(out io.Writer, info domain.HostInfo) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"OS", info.OS},
		{"Arch", info.Arch},
		{"Discovery family", info.Family},
		{"Hostname", info.Hostname},
		{"Platform", strings.TrimSpace(info.Platform + " " + info.PlatformVersion)},
		{"Platform family", info.PlatformFamily},
		{"Kernel", info.KernelVersion},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1])
	}
	_ = tw.Flush()
}

// RenderHealthReport prints doctor checks.
func RenderHealthReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}

// RenderScanRecords prints history entries with relative timestamps.
func RenderScanRecords(out io.Writer, records []domain.ScanRecord, now time.Time) {
	for _, rec := range records {
		shells := make([]string, 0, len(rec.Shells))
		for _, sh := range rec.Shells {
			shells = append(shells, string(sh))
		}
		fmt.Fprintf(out, "%s | %s | %s | %d | %s\n",
			rec.Timestamp.Format(domain.TimestampFormat),
			humanize.RelTime(rec.Timestamp, now, "ago", "from now"),
			rec.Strategy,
			rec.Count,
			strings.Join(shells, ", "))
	}
}
