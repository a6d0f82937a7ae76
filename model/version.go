// Package model defines the data structures shared across envbump services.
package model

import "fmt"

// VersionInfo contains build-time metadata about the envbump binary.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("envbump %s (commit %s, built %s)", v.Version, v.Commit, v.Date)
}
