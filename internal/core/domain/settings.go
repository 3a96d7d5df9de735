package domain

import "runtime"

// Settings holds the harness configuration: output locations, grid
// truncation, and the defaults used when a run does not override them.
type Settings struct {
	ResultsDir    string
	RunsDir       string
	CutoffDataset string
	SmokeCount    int
	BatchSize     int
	Trials        int
	Workers       int
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		ResultsDir:    "results",
		RunsDir:       "runs",
		CutoffDataset: "FB15k237",
		SmokeCount:    5,
		BatchSize:     2048,
		Trials:        10,
		Workers:       runtime.NumCPU(),
	}
}
