// Package jsonoutput renders envbump results as JSON.
package jsonoutput

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/thirukguru/envbump/model"
)

// OutputUpdateJSON writes the update report to w as indented JSON.
func OutputUpdateJSON(w io.Writer, report model.UpdateReport) error {
	return printJSON(w, BuildUpdateReport(report, time.Now().UTC().Format(time.RFC3339)))
}

// BuildUpdateReport builds the JSON report model.
func BuildUpdateReport(report model.UpdateReport, generatedAt string) model.UpdateReportJSON {
	files := make([]model.FileResultJSON, 0, len(report.Files))
	summary := model.UpdateSummaryJSON{Matched: len(report.Files)}
	for _, f := range report.Files {
		files = append(files, model.FileResultJSON{
			Path:    f.Path,
			Matches: f.Matches,
			Changed: f.Changed,
			Written: f.Written,
			Size:    f.Size,
		})
		if f.Changed {
			summary.Changed++
		} else {
			summary.Unchanged++
		}
		if f.Written {
			summary.Written++
		}
	}

	return model.UpdateReportJSON{
		GeneratedAt: generatedAt,
		Version:     report.Version,
		Key:         report.Key,
		Dir:         report.Dir,
		Pattern:     report.Pattern,
		DryRun:      report.DryRun,
		Buffered:    report.Buffered,
		Summary:     summary,
		Files:       files,
	}
}

// OutputVersionJSON writes build metadata as JSON.
func OutputVersionJSON(w io.Writer, info model.VersionInfo) error {
	return printJSON(w, model.VersionJSON{Version: info.Version, Commit: info.Commit, Date: info.Date})
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
