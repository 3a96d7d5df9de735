package domain

import "go.trai.ch/zerr"

var (
	// ErrCutoffNotInRegistry is returned when the configured cutoff dataset
	// does not exist in the registry.
	ErrCutoffNotInRegistry = zerr.New("cutoff dataset not in registry")

	// ErrMissingValidation is returned when a dataset lacks the validation
	// split required for filtered evaluation.
	ErrMissingValidation = zerr.New("dataset has no validation split")

	// ErrUnknownModelKind is returned when a configuration carries a model
	// kind no factory knows how to construct.
	ErrUnknownModelKind = zerr.New("unknown model kind")

	// ErrMalformedConfiguration is returned when a configuration's parameter
	// variant does not match its kind tag.
	ErrMalformedConfiguration = zerr.New("malformed model configuration")

	// ErrMetricMissing is returned when an evaluation result lacks one of
	// the metrics in the fixed metric list.
	ErrMetricMissing = zerr.New("metric missing from evaluation result")

	// ErrCorruptCacheEntry is returned when a cache artifact exists but its
	// payload checksum does not match its records.
	ErrCorruptCacheEntry = zerr.New("cache artifact checksum mismatch")
)
