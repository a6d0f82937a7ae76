package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/hashicorp/go-multierror"
	"github.com/thirukguru/envbump/model"
)

// keyRe accepts identifier-like keys; dots are allowed for namespaced keys.
var keyRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// NewService creates a new config service.
func NewService() Service {
	return &service{}
}

// Load reads ENVBUMP_* variables, falling back to the tag defaults.
func (s *service) Load() (model.Config, error) {
	var cfg model.Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return model.Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem with flags at once.
func Validate(flags model.Flags) error {
	var merr *multierror.Error

	if strings.TrimSpace(flags.Dir) == "" {
		merr = multierror.Append(merr, errors.New("dir must not be empty"))
	}
	if _, err := filepath.Match(flags.Pattern, ""); err != nil || flags.Pattern == "" {
		merr = multierror.Append(merr, fmt.Errorf("invalid pattern %q", flags.Pattern))
	}
	if !keyRe.MatchString(flags.Key) {
		merr = multierror.Append(merr, fmt.Errorf("invalid key %q", flags.Key))
	}
	if !oneOf(outputFormats, flags.Output) {
		merr = multierror.Append(merr, fmt.Errorf("unknown output %q (want %s)", flags.Output, strings.Join(outputFormats, ", ")))
	}
	if !oneOf(logFormats, flags.LogFormat) {
		merr = multierror.Append(merr, fmt.Errorf("unknown log format %q (want %s)", flags.LogFormat, strings.Join(logFormats, ", ")))
	}
	if !oneOf(logLevels, flags.LogLevel) {
		merr = multierror.Append(merr, fmt.Errorf("unknown log level %q", flags.LogLevel))
	}

	return merr.ErrorOrNil()
}

func oneOf(allowed []string, v string) bool {
	return slices.Contains(allowed, strings.ToLower(v))
}
