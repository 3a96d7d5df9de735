// Package config provides the YAML configuration loader for the harness.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the configuration file looked up in the working directory.
const Filename = "baseline.yaml"

// Loader reads harness settings from a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader for the default filename.
func NewLoader() *Loader {
	return &Loader{Filename: Filename}
}

// Load reads the configuration from the given working directory. A missing
// file is not an error: the harness runs with built-in defaults.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path := filepath.Join(cwd, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if file.ResultsDir != "" {
		settings.ResultsDir = file.ResultsDir
	}
	if file.RunsDir != "" {
		settings.RunsDir = file.RunsDir
	}
	if file.CutoffDataset != "" {
		settings.CutoffDataset = file.CutoffDataset
	}
	if file.SmokeCount > 0 {
		settings.SmokeCount = file.SmokeCount
	}
	if file.BatchSize > 0 {
		settings.BatchSize = file.BatchSize
	}
	if file.Trials != nil {
		// Trials is a pointer so an explicit zero (single unresampled
		// trial) survives the merge.
		settings.Trials = *file.Trials
	}
	if file.Workers > 0 {
		settings.Workers = file.Workers
	}

	return settings, nil
}
