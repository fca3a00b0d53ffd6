package ruleengine_test

import (
	"fmt"

	"github.com/moottier/ccrev/ruleengine"
)

// ExampleAnalyze demonstrates flagging a single three-sigma spike in an
// otherwise quiet series using the default four-rule catalog.
func ExampleAnalyze() {
	series := []float64{0, 0, 0, 0, 10, 0, 0, 0}
	labels, err := ruleengine.Analyze(series, 0, 1, ruleengine.DefaultCatalog())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(labels)
	// Output:
	// [0 0 0 0 1 0 0 0]
}
