package output

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/envbump/model"
)

type mockRenderer struct {
	calls []string
}

func (m *mockRenderer) DrawUpdateTable(io.Writer, model.UpdateReport) {
	m.calls = append(m.calls, "table")
}
func (m *mockRenderer) DrawVersion(io.Writer, model.VersionInfo) {
	m.calls = append(m.calls, "version-table")
}
func (m *mockRenderer) OutputUpdateJSON(io.Writer, model.UpdateReport) error {
	m.calls = append(m.calls, "json")
	return nil
}
func (m *mockRenderer) OutputVersionJSON(io.Writer, model.VersionInfo) error {
	m.calls = append(m.calls, "version-json")
	return nil
}
func (m *mockRenderer) StartSpinner(io.Writer) { m.calls = append(m.calls, "spin") }
func (m *mockRenderer) StopSpinner()           { m.calls = append(m.calls, "stop") }

func newTestService(format string, interactive bool) (*service, *mockRenderer) {
	r := &mockRenderer{}
	svc := NewService(format, &bytes.Buffer{}).(*service)
	svc.renderer = r
	svc.interactive = interactive
	return svc, r
}

func TestNewServiceFormats(t *testing.T) {
	tests := map[string]Format{
		"":      FormatTable,
		"table": FormatTable,
		"JSON":  FormatJSON,
		"none":  FormatNone,
		"html":  FormatTable,
	}
	for in, want := range tests {
		svc := NewService(in, io.Discard).(*service)
		assert.Equal(t, want, svc.format, in)
	}
}

func TestRenderUpdateDispatch(t *testing.T) {
	report := model.UpdateReport{Version: "1"}

	svc, r := newTestService("table", false)
	require.NoError(t, svc.RenderUpdate(report))
	require.NoError(t, svc.RenderVersion(model.VersionInfo{}))
	assert.Equal(t, []string{"table", "version-table"}, r.calls)

	svc, r = newTestService("json", false)
	require.NoError(t, svc.RenderUpdate(report))
	require.NoError(t, svc.RenderVersion(model.VersionInfo{}))
	assert.Equal(t, []string{"json", "version-json"}, r.calls)

	svc, r = newTestService("none", false)
	require.NoError(t, svc.RenderUpdate(report))
	assert.Empty(t, r.calls)
	require.NoError(t, svc.RenderVersion(model.VersionInfo{}))
	assert.Equal(t, []string{"version-table"}, r.calls)
}

func TestSpinnerOnlyForInteractiveTable(t *testing.T) {
	svc, r := newTestService("table", true)
	svc.StartSpinner()
	svc.StopSpinner()
	assert.Equal(t, []string{"spin", "stop"}, r.calls)

	for _, format := range []string{"json", "none"} {
		svc, r = newTestService(format, true)
		svc.StartSpinner()
		assert.Empty(t, r.calls, format)
	}

	svc, r = newTestService("table", false)
	svc.StartSpinner()
	assert.Empty(t, r.calls)
}

func TestRenderUpdateWritesTable(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService("table", &buf)
	require.NoError(t, svc.RenderUpdate(model.UpdateReport{
		Version: "2.3.1",
		Key:     "SERVER_APP_VERSION",
		Files:   []model.FileResult{{Path: ".env", Matches: 1, Changed: true, Written: true}},
	}))
	assert.Contains(t, buf.String(), ".env")
}

func TestRenderVersionWithNoneStillPrints(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewService("none", &buf).RenderVersion(model.VersionInfo{Version: "v1.0.0", Commit: "abc", Date: "today"}))
	assert.Contains(t, buf.String(), "envbump v1.0.0")
}
