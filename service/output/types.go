package output

import (
	"io"

	"github.com/thirukguru/envbump/model"
	jsonoutput "github.com/thirukguru/envbump/shared/json_output"
	reporttable "github.com/thirukguru/envbump/shared/report_table"
	"github.com/thirukguru/envbump/shared/spinner"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatNone  Format = "none"
)

// Renderer defines the interface for drawing results
type Renderer interface {
	DrawUpdateTable(w io.Writer, report model.UpdateReport)
	DrawVersion(w io.Writer, info model.VersionInfo)
	OutputUpdateJSON(w io.Writer, report model.UpdateReport) error
	OutputVersionJSON(w io.Writer, info model.VersionInfo) error
	StartSpinner(w io.Writer)
	StopSpinner()
}

type realRenderer struct{}

func (r *realRenderer) DrawUpdateTable(w io.Writer, report model.UpdateReport) {
	reporttable.DrawUpdateTable(w, report)
}

func (r *realRenderer) DrawVersion(w io.Writer, info model.VersionInfo) {
	reporttable.DrawVersion(w, info)
}

func (r *realRenderer) OutputUpdateJSON(w io.Writer, report model.UpdateReport) error {
	return jsonoutput.OutputUpdateJSON(w, report)
}

func (r *realRenderer) OutputVersionJSON(w io.Writer, info model.VersionInfo) error {
	return jsonoutput.OutputVersionJSON(w, info)
}

func (r *realRenderer) StartSpinner(w io.Writer) {
	spinner.StartSpinner(w)
}

func (r *realRenderer) StopSpinner() {
	spinner.StopSpinner()
}

// service is the internal implementation
type service struct {
	format      Format
	out         io.Writer
	interactive bool
	renderer    Renderer
}

// Service defines the interface for output operations
type Service interface {
	RenderUpdate(report model.UpdateReport) error
	RenderVersion(info model.VersionInfo) error
	StartSpinner()
	StopSpinner()
}
