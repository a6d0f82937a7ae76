// Package logging builds the slog handler used by envbump.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
	JSONFormat   = "json"
)

// NewHandler creates a [slog.Handler] writing to w at the given level and format.
func NewHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var formatter log.Formatter
	switch strings.ToLower(format) {
	case TextFormat, "":
		formatter = log.TextFormatter
	case LogfmtFormat:
		formatter = log.LogfmtFormatter
	case JSONFormat:
		formatter = log.JSONFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: formatter != log.TextFormatter,
		Prefix:          "envbump",
	}), nil
}

// ParseLevel accepts the level names used by the CLI, including "warning".
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "warn", "warning":
		return log.WarnLevel, nil
	default:
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return 0, fmt.Errorf("unknown log level %q: %w", level, err)
		}
		return lvl, nil
	}
}
