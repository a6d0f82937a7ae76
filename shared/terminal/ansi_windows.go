//go:build windows

package terminal

import (
	"os"

	"golang.org/x/sys/windows"
)

// EnableANSI turns on virtual terminal processing for stdout and stderr so
// the colored table and log output render.
func EnableANSI() {
	const enableVirtualTerminalProcessing = 0x0004

	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		handle := windows.Handle(f.Fd())

		var mode uint32
		if err := windows.GetConsoleMode(handle, &mode); err != nil {
			continue
		}
		_ = windows.SetConsoleMode(handle, mode|enableVirtualTerminalProcessing)
	}
}
