package ports

import "context"

// Evaluator scores a model against a dataset's testing split with rank-based
// metrics, filtering out triples already seen in the training and validation
// splits. The harness treats it as a black box: any error it returns aborts
// the combination.
//
//go:generate go run go.uber.org/mock/mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks
type Evaluator interface {
	// Evaluate returns one value per metric name in the fixed metric list.
	Evaluate(ctx context.Context, model ScorableModel, ds Dataset, batchSize int) (map[string]float64, error)
}
