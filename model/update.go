package model

// UpdateInput describes one envbump run over a directory.
type UpdateInput struct {
	Version  string
	Dir      string
	Pattern  string
	Key      string
	DryRun   bool
	Buffered bool
}

// FileResult is the outcome for a single matched file.
type FileResult struct {
	Path    string
	Matches int
	// Changed reports whether the new content differs from the old.
	Changed bool
	// Written is false for dry runs and for files never reached.
	Written bool
	Size    int64
}

// UpdateReport collects per-file results in processing order.
type UpdateReport struct {
	Version  string
	Key      string
	Dir      string
	Pattern  string
	DryRun   bool
	Buffered bool
	Files    []FileResult
}

// Changed returns how many files had at least one value replaced.
func (r UpdateReport) Changed() int {
	n := 0
	for _, f := range r.Files {
		if f.Changed {
			n++
		}
	}
	return n
}

// Written returns the paths that were rewritten on disk.
func (r UpdateReport) Written() []string {
	var paths []string
	for _, f := range r.Files {
		if f.Written {
			paths = append(paths, f.Path)
		}
	}
	return paths
}
