package flag

import (
	"io"

	"github.com/thirukguru/envbump/model"
)

type service struct {
	defaults model.Config
	out      io.Writer
}

// Service is the interface for CLI flag service.
type Service interface {
	GetParsedFlags(args []string) (model.Flags, error)
}
