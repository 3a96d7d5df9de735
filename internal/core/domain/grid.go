package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// EnumerationPolicy controls how the size-ordered dataset sequence is
// truncated before the grid is formed.
type EnumerationPolicy struct {
	// Smoke keeps only the SmokeCount smallest datasets.
	Smoke      bool
	SmokeCount int
	// Cutoff names the last dataset kept in full mode, inclusive. Empty
	// keeps the whole registry.
	Cutoff string
}

// SelectDatasets sorts the registry ascending by size key and applies the
// enumeration policy. Ties sort by name so the sequence is stable across
// runs.
func SelectDatasets(datasets []DatasetDescriptor, policy EnumerationPolicy) ([]DatasetDescriptor, error) {
	sorted := slices.Clone(datasets)
	slices.SortFunc(sorted, func(a, b DatasetDescriptor) int {
		if a.SortKey() != b.SortKey() {
			return a.SortKey() - b.SortKey()
		}
		return strings.Compare(a.Name, b.Name)
	})

	if policy.Smoke {
		n := min(policy.SmokeCount, len(sorted))
		return sorted[:n], nil
	}

	if policy.Cutoff == "" {
		return sorted, nil
	}

	idx := slices.IndexFunc(sorted, func(d DatasetDescriptor) bool {
		return d.Name == policy.Cutoff
	})
	if idx < 0 {
		return nil, zerr.With(ErrCutoffNotInRegistry, "cutoff", policy.Cutoff)
	}
	return sorted[:idx+1], nil
}

// DefaultConfigurations returns the full ordered configuration sequence: the
// boolean-flag cross product of the marginal-distribution baseline, then one
// soft-inverse-triple variant per threshold. The concatenation order is
// fixed so cache keys and table ordering stay reproducible.
func DefaultConfigurations() []ModelConfiguration {
	configs := make([]ModelConfiguration, 0, 7)
	for _, entityMargin := range []bool{true, false} {
		for _, relationMargin := range []bool{true, false} {
			configs = append(configs, NewMarginalConfiguration(entityMargin, relationMargin))
		}
	}
	for _, threshold := range []*float64{nil, ptr(0.1), ptr(0.3)} {
		configs = append(configs, NewSoftInverseConfiguration(threshold))
	}
	return configs
}

func ptr(f float64) *float64 {
	return &f
}

// Grid returns the Cartesian product of datasets and configurations in
// dataset-major order.
func Grid(datasets []DatasetDescriptor, configs []ModelConfiguration) []Combination {
	grid := make([]Combination, 0, len(datasets)*len(configs))
	for _, dataset := range datasets {
		for _, config := range configs {
			grid = append(grid, Combination{Dataset: dataset, Config: config})
		}
	}
	return grid
}
