package config

// File represents the structure of the baseline.yaml configuration file.
// Every field is optional; zero values fall back to the built-in defaults.
type File struct {
	ResultsDir    string `yaml:"results_dir"`
	RunsDir       string `yaml:"runs_dir"`
	CutoffDataset string `yaml:"cutoff_dataset"`
	SmokeCount    int    `yaml:"smoke_count"`
	BatchSize     int    `yaml:"batch_size"`
	Trials        *int   `yaml:"trials"`
	Workers       int    `yaml:"workers"`
}
