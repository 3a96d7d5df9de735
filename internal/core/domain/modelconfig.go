package domain

import (
	"fmt"
	"strconv"
)

// ModelKind tags one family of non-parametric baseline models.
type ModelKind string

const (
	// KindMarginalDistribution scores triples from the marginal entity and
	// relation distributions of the training split.
	KindMarginalDistribution ModelKind = "MarginalDistribution"
	// KindSoftInverseTriple scores triples from soft relation-inverse
	// similarity, optionally cut off below a threshold.
	KindSoftInverseTriple ModelKind = "SoftInverseTriple"
)

// MarginalParams is the closed parameter set of the marginal-distribution
// baseline.
type MarginalParams struct {
	EntityMargin   bool
	RelationMargin bool
}

// SoftInverseParams is the closed parameter set of the soft-inverse-triple
// baseline. A nil Threshold disables thresholding.
type SoftInverseParams struct {
	Threshold *float64
}

// ModelConfiguration is a tagged variant: exactly the parameter field
// matching Kind is set. Configurations are immutable once built by the grid
// generator.
type ModelConfiguration struct {
	Kind        ModelKind
	Marginal    *MarginalParams
	SoftInverse *SoftInverseParams
}

// NewMarginalConfiguration builds a marginal-distribution configuration.
func NewMarginalConfiguration(entityMargin, relationMargin bool) ModelConfiguration {
	return ModelConfiguration{
		Kind: KindMarginalDistribution,
		Marginal: &MarginalParams{
			EntityMargin:   entityMargin,
			RelationMargin: relationMargin,
		},
	}
}

// NewSoftInverseConfiguration builds a soft-inverse-triple configuration.
func NewSoftInverseConfiguration(threshold *float64) ModelConfiguration {
	return ModelConfiguration{
		Kind:        KindSoftInverseTriple,
		SoftInverse: &SoftInverseParams{Threshold: threshold},
	}
}

// Params returns the configuration's parameter mapping. The key set is the
// closed set of the configuration's kind; an unset optional value maps to
// nil so it canonicalizes to JSON null.
func (c ModelConfiguration) Params() map[string]any {
	switch c.Kind {
	case KindMarginalDistribution:
		return map[string]any{
			"entity_margin":   c.Marginal.EntityMargin,
			"relation_margin": c.Marginal.RelationMargin,
		}
	case KindSoftInverseTriple:
		if c.SoftInverse.Threshold == nil {
			return map[string]any{"threshold": nil}
		}
		return map[string]any{"threshold": *c.SoftInverse.Threshold}
	default:
		return nil
	}
}

// ParamKeys returns the sorted union of parameter keys across all model
// kinds. Records are projected onto this union at aggregation time.
func ParamKeys() []string {
	return []string{"entity_margin", "relation_margin", "threshold"}
}

// FormatParam renders one parameter value for the aggregated table. Absent
// and null values render empty.
func FormatParam(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// Combination is one (dataset, model configuration) cell of the grid.
type Combination struct {
	Dataset DatasetDescriptor
	Config  ModelConfiguration
}

// Name returns a human-readable identifier for the combination, used for
// progress reporting and error annotation.
func (c Combination) Name() string {
	return c.Dataset.Name + "/" + string(c.Config.Kind)
}
