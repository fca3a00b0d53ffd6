package batch

import "github.com/moottier/ccrev/ruleengine"

// SignalsFromLabels reconstructs the Signal intervals implied by a
// ruleengine.Analyze label sequence: each maximal run of equal nonzero
// labels whose samples all sit on the same side of mean becomes one
// Signal. A run also breaks on an orientation change even when the
// label id doesn't change — Rule 1 (Window:1, ContinuationWindow:0)
// closes a signal immediately and lets the next index open a fresh
// one, so two adjacent single-point breaches of opposite sign paint as
// an unbroken run of the same rule id with nothing for the resolver to
// trim (same-rule signals never overlap). Treating that as one Signal
// would silently discard the second point's orientation and under-
// count it in chart highlighting and report narration. Used to
// populate Batch.Signals, since Analyze itself only returns the
// flattened per-index label sequence.
func SignalsFromLabels(series []float64, mean float64, labels []int) []ruleengine.Signal {
	var out []ruleengine.Signal

	start := -1
	for i := 0; i <= len(labels); i++ {
		breaksRun := start >= 0 && (i == len(labels) || labels[i] != labels[start] || orientation(series, mean, i) != orientation(series, mean, start))
		if breaksRun {
			out = append(out, ruleengine.Signal{
				RuleId:   labels[start],
				Start:    start,
				End:      i,
				Positive: orientation(series, mean, start),
			})
			start = -1
		}

		if i < len(labels) && labels[i] != 0 && start < 0 {
			start = i
		}
	}

	return out
}

// orientation reports whether series[i] sits above mean.
func orientation(series []float64, mean float64, i int) bool {
	return series[i] > mean
}
