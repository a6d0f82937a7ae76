// Package flag parses the envbump command line.
package flag

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"github.com/thirukguru/envbump/model"
)

const usageHeader = `Usage: envbump [flags] <version>

Rewrites KEY=<value> in every env file of a directory with KEY=<version>.

Flags:
`

// NewService creates a new flag service whose defaults come from cfg.
// Usage and parse errors are written to w.
func NewService(cfg model.Config, w io.Writer) Service {
	return &service{defaults: cfg, out: w}
}

// GetParsedFlags parses args (without the program name). The single
// positional argument is the version to write.
func (s *service) GetParsedFlags(args []string) (model.Flags, error) {
	fs := pflag.NewFlagSet("envbump", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(s.out)
	fs.Usage = func() {
		fmt.Fprint(s.out, usageHeader)
		fs.PrintDefaults()
	}

	dir := fs.StringP("dir", "d", s.defaults.Dir, "Directory to scan for env files (not recursive)")
	pattern := fs.String("pattern", s.defaults.Pattern, "Glob matched against file names in --dir")
	key := fs.StringP("key", "k", s.defaults.Key, "Key whose value is replaced")
	output := fs.StringP("output", "o", s.defaults.Output, "Output format (table, json, or none)")
	logLevel := fs.String("log-level", s.defaults.LogLevel, "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", s.defaults.LogFormat, "Log format (text, logfmt, json)")
	dryRun := fs.Bool("dry-run", false, "Report what would change without writing files")
	buffered := fs.Bool("buffered", false, "Read and rewrite every file in memory before writing any")
	strict := fs.Bool("strict", false, "Reject versions containing characters other than letters, digits, '.', '-' and ':'")
	version := fs.BoolP("version", "v", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return model.Flags{}, err
	}

	flags := model.Flags{
		Dir:       *dir,
		Pattern:   *pattern,
		Key:       *key,
		Output:    *output,
		LogLevel:  *logLevel,
		LogFormat: *logFormat,
		DryRun:    *dryRun,
		Buffered:  *buffered,
		Strict:    *strict,
		Version:   *version,
	}

	rest := fs.Args()
	switch {
	case len(rest) == 1:
		flags.TargetVersion = rest[0]
	case len(rest) > 1:
		return model.Flags{}, fmt.Errorf("expected a single version argument, got %d", len(rest))
	}

	return flags, nil
}
