package model

// UpdateReportJSON is the JSON shape of a run report.
type UpdateReportJSON struct {
	GeneratedAt string            `json:"generated_at"`
	Version     string            `json:"version"`
	Key         string            `json:"key"`
	Dir         string            `json:"dir"`
	Pattern     string            `json:"pattern"`
	DryRun      bool              `json:"dry_run"`
	Buffered    bool              `json:"buffered"`
	Summary     UpdateSummaryJSON `json:"summary"`
	Files       []FileResultJSON  `json:"files"`
}

// UpdateSummaryJSON aggregates the per-file results.
type UpdateSummaryJSON struct {
	Matched   int `json:"matched"`
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
	Written   int `json:"written"`
}

// FileResultJSON is the JSON shape of a FileResult.
type FileResultJSON struct {
	Path    string `json:"path"`
	Matches int    `json:"matches"`
	Changed bool   `json:"changed"`
	Written bool   `json:"written"`
	Size    int64  `json:"size"`
}

// VersionJSON is printed by --version --output json.
type VersionJSON struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}
