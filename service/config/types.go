// Package config loads envbump defaults from ENVBUMP_* environment variables
// and validates the final set of flags.
package config

import "github.com/thirukguru/envbump/model"

var (
	outputFormats = []string{"table", "json", "none"}
	logFormats    = []string{"text", "logfmt", "json"}
	logLevels     = []string{"debug", "info", "warn", "warning", "error"}
)

type service struct{}

// Service is the interface for configuration loading.
type Service interface {
	Load() (model.Config, error)
}
