// Package reporttable renders an update report as a console table.
package reporttable

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/envbump/model"
)

// DrawUpdateTable writes one row per processed file to w.
func DrawUpdateTable(w io.Writer, report model.UpdateReport) {
	heading := fmt.Sprintf("\n%s=%s in %s (%s)", report.Key, report.Version, report.Dir, report.Pattern)
	if report.DryRun {
		heading += " [dry run]"
	}
	fmt.Fprintln(w, heading)

	if len(report.Files) == 0 {
		fmt.Fprintln(w, text.FgYellow.Sprint("No env files matched."))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"File", "Matches", "Status", "Size"})
	for _, f := range report.Files {
		t.AppendRow(table.Row{f.Path, f.Matches, formatStatus(f), humanize.Bytes(uint64(f.Size))})
	}
	t.AppendFooter(table.Row{"Total", len(report.Files), fmt.Sprintf("%d changed", report.Changed()), ""})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawVersion writes the build metadata line.
func DrawVersion(w io.Writer, info model.VersionInfo) {
	fmt.Fprintln(w, info.String())
}

func formatStatus(f model.FileResult) string {
	switch {
	case f.Changed && f.Written:
		return text.FgGreen.Sprint("updated")
	case f.Changed:
		return text.FgCyan.Sprint("would update")
	case f.Matches > 0:
		return "up to date"
	default:
		return text.FgHiBlack.Sprint("no key")
	}
}
