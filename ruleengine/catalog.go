package ruleengine

// DefaultCatalog returns the four Nelson/Western-Electric run-rules in
// priority order (lower Id wins overlap resolution): a point beyond the
// three-sigma action limit, a run on one side of the mean, a monotonic
// run, and an alternating oscillation.
//
// Callers may build their own catalog (e.g. a subset, or additional
// rules) by assembling []Rule directly — DefaultCatalog is a
// convenience, not a requirement of Analyze.
func DefaultCatalog() []Rule {
	return []Rule{rule1(), rule2(), rule3(), rule4()}
}

// rule1 fires on a single point at or beyond mean ± 3·stdev. The
// three-sigma boundary itself counts as a violation, per the "open band"
// variant the spec codifies: a sample is only safe when strictly within
// (mean-3·stdev, mean+3·stdev).
func rule1() Rule {
	return Rule{
		Id:                 1,
		Window:             1,
		ContinuationWindow: 0,
		OrientationWindow:  1,
		Detect: func(w []float64, mean, stdev float64) bool {
			x := w[0]
			lower := mean - 3*stdev
			upper := mean + 3*stdev

			return !(lower < x && x < upper)
		},
		IsContinued: func(_ []float64, _ bool, _ int, _, _ float64) bool {
			return false // Rule 1 signals always have length exactly 1
		},
		Orientation: func(w []float64, mean, _ float64) bool {
			return w[0] > mean
		},
	}
}

// rule2 fires on a run of Window consecutive points strictly on one side
// of the mean, and continues so long as each further point stays on the
// same side as the run started.
func rule2() Rule {
	return Rule{
		Id:                 2,
		Window:             8,
		ContinuationWindow: 1,
		OrientationWindow:  1,
		Detect: func(w []float64, mean, _ float64) bool {
			return allAbove(w, mean) || allBelow(w, mean)
		},
		IsContinued: func(trailing []float64, positive bool, _ int, mean, _ float64) bool {
			x := trailing[len(trailing)-1]

			return (positive && x > mean) || (!positive && x < mean)
		},
		Orientation: func(w []float64, mean, _ float64) bool {
			return w[0] > mean
		},
	}
}

// rule3 fires on a monotonic run (strictly increasing or strictly
// decreasing) of Window consecutive points, and continues so long as each
// further point keeps moving in the same direction. Ties (equal
// successive samples) break strict monotonicity and therefore end the
// run.
func rule3() Rule {
	return Rule{
		Id:                 3,
		Window:             6,
		ContinuationWindow: 1,
		OrientationWindow:  2,
		Detect: func(w []float64, _, _ float64) bool {
			return strictlyIncreasing(w) || strictlyDecreasing(w)
		},
		IsContinued: func(trailing []float64, positive bool, _ int, _, _ float64) bool {
			prev, x := trailing[0], trailing[1]
			if positive {
				return x > prev
			}

			return x < prev
		},
		Orientation: func(w []float64, _, _ float64) bool {
			return w[0] < w[len(w)-1]
		},
	}
}

// rule4 fires on Window consecutive points that alternate direction at
// every step (strict zig-zag). Continuation depends on the parity of the
// signal's current length: on an even length the candidate must move in
// the signal's starting direction (up when positive, down otherwise), on
// an odd length in the opposite direction.
func rule4() Rule {
	return Rule{
		Id:                 4,
		Window:             14,
		ContinuationWindow: 1,
		OrientationWindow:  2,
		Detect: func(w []float64, _, _ float64) bool {
			for i := 0; i+2 < len(w); i++ {
				a, b, c := w[i], w[i+1], w[i+2]
				if sign(a-b)*sign(b-c) != -1 {
					return false
				}
			}

			return true
		},
		IsContinued: func(trailing []float64, positive bool, signalLen int, _, _ float64) bool {
			prev, x := trailing[0], trailing[1]
			oddLen := signalLen%2 == 1
			switch {
			case oddLen:
				return (positive && prev > x) || (!positive && prev < x)
			default:
				return (positive && prev < x) || (!positive && prev > x)
			}
		},
		Orientation: func(w []float64, _, _ float64) bool {
			return w[0] < w[1]
		},
	}
}

func allAbove(w []float64, mean float64) bool {
	for _, x := range w {
		if !(x > mean) {
			return false
		}
	}

	return true
}

func allBelow(w []float64, mean float64) bool {
	for _, x := range w {
		if !(x < mean) {
			return false
		}
	}

	return true
}

func strictlyIncreasing(w []float64) bool {
	for i := 1; i < len(w); i++ {
		if !(w[i-1] < w[i]) {
			return false
		}
	}

	return true
}

func strictlyDecreasing(w []float64) bool {
	for i := 1; i < len(w); i++ {
		if !(w[i-1] > w[i]) {
			return false
		}
	}

	return true
}

// sign returns -1, 0, or 1 according to the sign of x.
func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
