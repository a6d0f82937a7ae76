// Package output provides a service for rendering results to the console.
package output

import (
	"io"
	"strings"

	"github.com/thirukguru/envbump/model"
	"github.com/thirukguru/envbump/shared/terminal"
)

// NewService creates a new output service with the specified format writing to w.
func NewService(format string, w io.Writer) Service {
	f := FormatTable
	switch strings.ToLower(format) {
	case "json":
		f = FormatJSON
	case "none":
		f = FormatNone
	}

	return &service{
		format:      f,
		out:         w,
		interactive: terminal.IsTerminal(w),
		renderer:    &realRenderer{},
	}
}

func (s *service) RenderUpdate(report model.UpdateReport) error {
	switch s.format {
	case FormatJSON:
		return s.renderer.OutputUpdateJSON(s.out, report)
	case FormatNone:
		return nil
	}
	terminal.EnableANSI()
	s.renderer.DrawUpdateTable(s.out, report)
	return nil
}

// RenderVersion prints as text for both table and none: --version always
// produces output.
func (s *service) RenderVersion(info model.VersionInfo) error {
	if s.format == FormatJSON {
		return s.renderer.OutputVersionJSON(s.out, info)
	}
	s.renderer.DrawVersion(s.out, info)
	return nil
}

// StartSpinner only spins for table output on a terminal.
func (s *service) StartSpinner() {
	if s.format == FormatTable && s.interactive {
		s.renderer.StartSpinner(s.out)
	}
}

func (s *service) StopSpinner() {
	s.renderer.StopSpinner()
}
