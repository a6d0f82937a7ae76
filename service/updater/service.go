package updater

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thirukguru/envbump/model"
)

// NewService creates a new updater service.
func NewService() Service {
	return &service{}
}

// Discover lists dir without descending into subdirectories and returns the
// entries whose base name matches pattern.
func (s *service) Discover(dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		ok, _ := filepath.Match(pattern, e.Name())
		if ok {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}

// UpdateVersion rewrites the key's value in every discovered file. Files are
// handled one at a time; on error the report holds the files processed so
// far, and those already written stay modified.
func (s *service) UpdateVersion(input model.UpdateInput) (model.UpdateReport, error) {
	input = withDefaults(input)
	report := model.UpdateReport{
		Version:  input.Version,
		Key:      input.Key,
		Dir:      input.Dir,
		Pattern:  input.Pattern,
		DryRun:   input.DryRun,
		Buffered: input.Buffered,
	}

	if input.Version == "" {
		return report, ErrMissingVersion
	}

	paths, err := s.Discover(input.Dir, input.Pattern)
	if err != nil {
		return report, err
	}
	if len(paths) == 0 {
		slog.Info("no env files matched", "dir", input.Dir, "pattern", input.Pattern)
		return report, nil
	}

	if input.Buffered {
		return s.updateBuffered(report, paths, input)
	}

	for _, p := range paths {
		content, res, err := transform(p, input)
		if err != nil {
			return report, err
		}
		if !input.DryRun {
			if err := writeFile(p, content); err != nil {
				return report, err
			}
			res.Written = true
		}
		report.Files = append(report.Files, res)
		logResult(res)
	}
	return report, nil
}

// updateBuffered reads and rewrites all files in memory before writing any
// of them back.
func (s *service) updateBuffered(report model.UpdateReport, paths []string, input model.UpdateInput) (model.UpdateReport, error) {
	contents := make([][]byte, 0, len(paths))
	for _, p := range paths {
		content, res, err := transform(p, input)
		if err != nil {
			return report, err
		}
		contents = append(contents, content)
		report.Files = append(report.Files, res)
	}

	if input.DryRun {
		for _, res := range report.Files {
			logResult(res)
		}
		return report, nil
	}

	for i := range report.Files {
		if err := writeFile(report.Files[i].Path, contents[i]); err != nil {
			return report, err
		}
		report.Files[i].Written = true
		logResult(report.Files[i])
	}
	return report, nil
}

func transform(path string, input model.UpdateInput) ([]byte, model.FileResult, error) {
	old, err := os.ReadFile(path)
	if err != nil {
		return nil, model.FileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content, matches := Rewrite(old, input.Key, input.Version)
	return content, model.FileResult{
		Path:    path,
		Matches: matches,
		Changed: !bytes.Equal(old, content),
		Size:    int64(len(content)),
	}, nil
}

// writeFile truncates and rewrites path even when content is unchanged.
func writeFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func logResult(res model.FileResult) {
	slog.Debug("processed env file",
		"path", res.Path,
		"matches", res.Matches,
		"changed", res.Changed,
		"written", res.Written,
	)
}

func withDefaults(input model.UpdateInput) model.UpdateInput {
	if strings.TrimSpace(input.Dir) == "" {
		input.Dir = DefaultDir
	}
	if input.Pattern == "" {
		input.Pattern = DefaultPattern
	}
	if input.Key == "" {
		input.Key = DefaultKey
	}
	return input
}
