//go:build !windows

package terminal

// EnableANSI is a no-op outside Windows; escape sequences work by default.
func EnableANSI() {
}
