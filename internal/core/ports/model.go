package ports

import "github.com/pykeen/nonparametric-baseline-benchmark/internal/core/domain"

// ScorableModel scores candidate triples. Construction fixes the model to
// one training split; the harness never trains it further.
//
//go:generate go run go.uber.org/mock/mockgen -source=model.go -destination=mocks/mock_model.go -package=mocks
type ScorableModel interface {
	// Kind returns the model family the instance belongs to.
	Kind() domain.ModelKind

	// Score returns a plausibility score for the triple. Higher is better.
	Score(t domain.Triple) float64
}

// ModelFactory constructs model instances restricted to a training split and
// parameterized by a model configuration.
type ModelFactory interface {
	Construct(cfg domain.ModelConfiguration, training []domain.Triple) (ScorableModel, error)
}
