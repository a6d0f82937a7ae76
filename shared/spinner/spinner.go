package spinner

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

var loader *spinner.Spinner

// StartSpinner starts the CLI loading spinner on w.
func StartSpinner(w io.Writer) {
	loader = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = " Updating env files..."
	loader.Start()
}

// StopSpinner stops the CLI loading spinner.
func StopSpinner() {
	if loader != nil {
		loader.Stop()
		loader = nil
	}
}
