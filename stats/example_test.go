package stats_test

import (
	"fmt"

	"github.com/moottier/ccrev/stats"
)

// ExampleCompute demonstrates computing the mean/stdev of a series and
// the three-sigma action limits ruleengine's Rule 1 checks against.
func ExampleCompute() {
	mean, stdev, err := stats.Compute([]float64{1, 2, 3, 4, 5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	lower, upper := stats.ThreeSigmaLimits(mean, stdev)
	fmt.Printf("mean=%.2f lower=%.2f upper=%.2f\n", mean, lower, upper)
	// Output:
	// mean=3.00 lower=-1.74 upper=7.74
}
