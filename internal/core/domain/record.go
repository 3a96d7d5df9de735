package domain

// HitsKs are the cutoffs reported as hits@k metrics.
var HitsKs = []int{1, 5, 10, 50, 100}

var metricNames = []string{
	"mrr", "iamr", "igmr",
	"hits@1", "hits@5", "hits@10", "hits@50", "hits@100",
	"aamr", "aamri",
}

// Metrics returns the fixed ordered metric list reported for every trial.
func Metrics() []string {
	out := make([]string, len(metricNames))
	copy(out, metricNames)
	return out
}

// TrialRecord is one result row: a single evaluation of one model
// configuration on one resampled trial of one dataset. Records are immutable
// once produced.
//
// Params holds only the keys defined by the record's model kind; projection
// onto the global key union happens at aggregation time.
type TrialRecord struct {
	Dataset   string             `json:"dataset"`
	Entities  int                `json:"entities"`
	Relations int                `json:"relations"`
	Triples   int                `json:"triples"`
	Trial     int                `json:"trial"`
	Model     string             `json:"model"`
	Params    map[string]any     `json:"params"`
	Seconds   float64            `json:"time"`
	Metrics   map[string]float64 `json:"metrics"`
}

// ParamColumns projects the record's parameters onto the global key union,
// rendering unset keys as empty strings.
func (r TrialRecord) ParamColumns() []string {
	cols := make([]string, 0, len(ParamKeys()))
	for _, key := range ParamKeys() {
		v, ok := r.Params[key]
		if !ok {
			cols = append(cols, "")
			continue
		}
		cols = append(cols, FormatParam(v))
	}
	return cols
}

// Columns returns the fixed column schema of the aggregated table:
// identifying columns, the sorted parameter-key union, elapsed time, then
// the metric list.
func Columns() []string {
	cols := []string{"dataset", "entities", "relations", "triples", "trial", "model"}
	cols = append(cols, ParamKeys()...)
	cols = append(cols, "time")
	cols = append(cols, metricNames...)
	return cols
}

// CacheVersion tags the trial-producing logic. Artifacts written under a
// different version are treated as misses and recomputed.
const CacheVersion = 1

// CacheEntry is the persisted result of one combination: the full ordered
// trial-record sequence plus the metadata needed to validate a hit. Entries
// are written once and never mutated.
type CacheEntry struct {
	Dataset  string        `json:"dataset"`
	Model    string        `json:"model"`
	Key      string        `json:"key"`
	Trials   int           `json:"trials"`
	Version  int           `json:"version"`
	Checksum string        `json:"checksum"`
	Records  []TrialRecord `json:"records"`
}

// RunSettings carries the per-run knobs the trial runner needs.
type RunSettings struct {
	// BatchSize is handed through to the evaluation call.
	BatchSize int
	// Trials is the requested trial count T. T=0 runs a single degenerate
	// trial on the unresampled base dataset.
	Trials int
	// Rebuild bypasses cache reads and overwrites existing artifacts.
	Rebuild bool
}
