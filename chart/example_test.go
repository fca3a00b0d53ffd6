package chart_test

import (
	"fmt"

	"github.com/moottier/ccrev/batch"
	"github.com/moottier/ccrev/chart"
	"github.com/moottier/ccrev/ruleengine"
)

// ExampleRender demonstrates rendering a batch with one flagged spike
// to a PNG image.
func ExampleRender() {
	b := batch.Batch{
		Name:    "widget-run-14",
		Series:  []float64{0, 1, -1, 0, 4, 1, 0, -1, 0, 1},
		Mean:    0,
		Stdev:   1,
		Signals: []ruleengine.Signal{{RuleId: 1, Start: 4, End: 5, Positive: true}},
	}

	png, err := chart.Render(b, ruleengine.DefaultCatalog())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(len(png) > 0)
	// Output:
	// true
}
