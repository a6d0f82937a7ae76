// Package updater rewrites the version key inside env files.
package updater

import (
	"errors"

	"github.com/thirukguru/envbump/model"
)

const (
	DefaultKey     = "SERVER_APP_VERSION"
	DefaultPattern = ".env*"
	DefaultDir     = "."

	// valueClass is the character class a key's value may consist of.
	valueClass = `[a-zA-Z0-9.\-:]`
)

var (
	ErrMissingVersion = errors.New("missing version argument")
	ErrInvalidVersion = errors.New("invalid version")
)

type service struct{}

// Service is the interface for the env file version updater.
type Service interface {
	Discover(dir, pattern string) ([]string, error)
	UpdateVersion(input model.UpdateInput) (model.UpdateReport, error)
}
