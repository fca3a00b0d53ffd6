package report

import (
	"fmt"
	"sort"

	"github.com/moottier/ccrev/batch"
)

// Narrate groups b.Signals by rule id and renders each rule's hits as a
// hyphenated run-length index string, e.g. a lone hit at index 4
// renders "4" and a run from 6 through 9 renders "6 - 9", using b.Index
// for the labels when present and the bare position otherwise.
func Narrate(b batch.Batch) []RuleNarrative {
	byRule := map[int][]string{}
	for _, sig := range b.Signals {
		byRule[sig.RuleId] = append(byRule[sig.RuleId], rangeString(b, sig.Start, sig.End))
	}

	ids := make([]int, 0, len(byRule))
	for id := range byRule {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]RuleNarrative, 0, len(ids))
	for _, id := range ids {
		out = append(out, RuleNarrative{RuleID: id, Ranges: byRule[id]})
	}

	return out
}

func rangeString(b batch.Batch, start, end int) string {
	first := label(b, start)
	if end-start <= 1 {
		return first
	}

	return fmt.Sprintf("%s - %s", first, label(b, end-1))
}

func label(b batch.Batch, i int) string {
	if i < len(b.Index) {
		return b.Index[i]
	}

	return fmt.Sprintf("%d", i)
}
