// Package chart renders an analyzed batch to a PNG: the raw series, its
// center line and action limits, and the points flagged by the rule
// engine highlighted by rule id. Not part of the rule engine itself
// (out of scope per the core's Non-goals) but grounded on
// ccrev/charts.py's IChart, the one part of the Python original this
// module replaces with gonum.org/v1/plot — the only plotting library
// anywhere in the retrieved corpus.
//
// ⚙️ Usage
//
//	png, err := chart.Render(b, ruleengine.DefaultCatalog())
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("batch.png", png, 0o644)
package chart
