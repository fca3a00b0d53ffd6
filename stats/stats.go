package stats

import "gonum.org/v1/gonum/stat"

// Compute returns the mean and sample standard deviation (Bessel's
// correction, n-1 divisor) of series, matching Python's
// statistics.mean/statistics.stdev. It returns ErrInsufficientData when
// len(series) < 2.
func Compute(series []float64) (mean, stdev float64, err error) {
	if len(series) < 2 {
		return 0, 0, ErrInsufficientData
	}

	mean = stat.Mean(series, nil)
	stdev = stat.StdDev(series, nil)

	return mean, stdev, nil
}

// ThreeSigmaLimits returns the (lower, upper) action limits at
// mean ± 3·stdev — the same boundary ruleengine's Rule 1 checks,
// exposed here for chart rendering and reporting.
func ThreeSigmaLimits(mean, stdev float64) (lower, upper float64) {
	return mean - 3*stdev, mean + 3*stdev
}
