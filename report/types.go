package report

import "github.com/moottier/ccrev/batch"

// Section is one batch's contribution to a report: its data, a
// pre-rendered chart image, and the narrative of what the rule engine
// found in it.
type Section struct {
	Batch    batch.Batch
	ChartPNG []byte
	Narrative []RuleNarrative
}

// RuleNarrative is the hyphenated run-length index string for every
// signal a single rule produced, the Go analogue of
// Report.stringify_signals.
type RuleNarrative struct {
	RuleID int
	Ranges []string
}
