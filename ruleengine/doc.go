// Package ruleengine implements a control-chart run-rule analyzer.
//
// 🚀 What is ruleengine?
//
//	Given a one-dimensional numeric series (successive measurements of a
//	quality-controlled process) plus its mean and standard deviation,
//	ruleengine flags contiguous index ranges that violate one of several
//	statistical-process-control "run-rules" in the Nelson/Western Electric
//	tradition:
//	  • Rule 1 — a point beyond the three-sigma action limit
//	  • Rule 2 — a run of points on one side of the mean
//	  • Rule 3 — a monotonic run (trend)
//	  • Rule 4 — an alternating oscillation
//
// ✨ Key features:
//   - pure, synchronous, single-pass per rule — O(n·|catalog|) time
//   - rules expressed as data (window sizes + three predicate funcs), not
//     an interface hierarchy, so custom catalogs are trivial to assemble
//   - deterministic priority-plus-overlap resolution when rules disagree
//
// ⚙️ Usage:
//
//	import "github.com/moottier/ccrev/ruleengine"
//
//	labels, err := ruleengine.Analyze(series, mean, stdev, ruleengine.DefaultCatalog())
//
// labels has the same length as series; each entry is either 0 (no
// violation) or the id of the highest-priority rule covering that index.
//
// Performance:
//
//   - Time:   O(n · |catalog|)
//   - Memory: O(n + total signals), total signals ≤ n
//
// See example_test.go for a runnable walkthrough of a three-sigma spike
// embedded in an otherwise-quiet series.
package ruleengine
