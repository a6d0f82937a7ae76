// Package main is the entry point for the envbump application.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/thirukguru/envbump/model"
	"github.com/thirukguru/envbump/service/config"
	"github.com/thirukguru/envbump/service/flag"
	"github.com/thirukguru/envbump/service/output"
	"github.com/thirukguru/envbump/service/updater"
	"github.com/thirukguru/envbump/shared/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	defaults, err := config.NewService().Load()
	if err != nil {
		return err
	}

	flags, err := flag.NewService(defaults, stderr).GetParsedFlags(args)
	if err != nil {
		return err
	}
	if err := config.Validate(flags); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	h, err := logging.NewHandler(stderr, flags.LogLevel, flags.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create log handler: %w", err)
	}
	slog.SetDefault(slog.New(h))

	outputService := output.NewService(flags.Output, stdout)

	if flags.Version {
		return outputService.RenderVersion(model.VersionInfo{Version: version, Commit: commit, Date: date})
	}

	if flags.TargetVersion == "" {
		return updater.ErrMissingVersion
	}
	if !updater.ValidVersion(flags.TargetVersion) {
		if flags.Strict {
			return fmt.Errorf("%w %q: only letters, digits, '.', '-' and ':' are allowed", updater.ErrInvalidVersion, flags.TargetVersion)
		}
		slog.Warn("version contains characters outside the matched class; a later run will not fully replace it",
			"version", flags.TargetVersion)
	}

	outputService.StartSpinner()
	report, err := updater.NewService().UpdateVersion(model.UpdateInput{
		Version:  flags.TargetVersion,
		Dir:      flags.Dir,
		Pattern:  flags.Pattern,
		Key:      flags.Key,
		DryRun:   flags.DryRun,
		Buffered: flags.Buffered,
	})
	outputService.StopSpinner()
	if err != nil {
		if written := report.Written(); len(written) > 0 {
			slog.Warn("update aborted; these files were already rewritten", "files", written)
		}
		return err
	}

	slog.Info("update complete", "version", report.Version, "files", len(report.Files), "changed", report.Changed())
	return outputService.RenderUpdate(report)
}
