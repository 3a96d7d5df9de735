// Package domain contains the core types of the benchmark harness.
package domain

// DatasetDescriptor identifies one dataset from the registry together with
// its training-split statistics. Descriptors are built once per run and are
// immutable.
type DatasetDescriptor struct {
	Name      string
	Entities  int
	Relations int
	Triples   int
}

// SortKey returns the canonical size-ordering key for the dataset.
func (d DatasetDescriptor) SortKey() int {
	return d.Triples
}

// Triple is one (head, relation, tail) fact, with components given as
// zero-based index identifiers.
type Triple struct {
	Head     int `json:"h"`
	Relation int `json:"r"`
	Tail     int `json:"t"`
}
