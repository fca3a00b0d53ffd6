package batch

import (
	"time"

	"github.com/moottier/ccrev/ruleengine"
)

// Batch is an ingested, analyzed unit of work: the raw series and its
// stats, plus the ruleengine output computed from them.
type Batch struct {
	// Name identifies the batch (e.g. the source file's base name).
	Name string

	// Series is the raw measurement series, in order.
	Series []float64

	// Index labels each Series entry (a timestamp, sample id, or a
	// synthesized 1-based position), parallel to Series.
	Index []string

	Mean  float64
	Stdev float64

	// Labels is Analyze's output: len(Labels) == len(Series).
	Labels []int

	// Signals is the resolved signal set reconstructed from Labels by
	// SignalsFromLabels, kept for reporting's run-length narrative.
	Signals []ruleengine.Signal

	// CatalogName identifies which rule catalog produced Labels/Signals
	// (DefaultCatalog's is "default").
	CatalogName string
}

// StoredBatch is the persisted form of a Batch: adds the store's
// surrogate id and the time it was saved.
type StoredBatch struct {
	Id int64
	Batch
	SavedAt time.Time
}
