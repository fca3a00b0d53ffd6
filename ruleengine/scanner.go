package ruleengine

import "math"

// ScanOne walks series under a single rule and returns its non-overlapping
// signals in increasing Start order. It is the per-rule half of the
// engine, exposed directly for testing and for callers who only care
// about one rule.
//
// State machine: at each index the scanner is either Idle or Active with
// an open signal. From Idle it looks for rule.Window consecutive samples
// satisfying rule.Detect; once found, it opens a signal and jumps past
// the detection window. From Active it feeds the next candidate sample
// to rule.IsContinued; while true the signal keeps growing one sample at
// a time, and the moment it returns false (or the series ends) the
// signal is emitted and scanning resumes from Idle at the same index —
// that index may still open a new signal of the same rule.
func ScanOne(series []float64, rule Rule, mean, stdev float64) ([]Signal, error) {
	if err := validateSeries(series); err != nil {
		return nil, err
	}
	if err := validateStats(mean, stdev); err != nil {
		return nil, err
	}

	n := len(series)
	var signals []Signal
	var active *Signal

	for i := 0; i <= n; {
		if active != nil {
			if i == n {
				signals = append(signals, *active)
				active = nil

				break
			}

			if rule.ContinuationWindow == 0 {
				signals = append(signals, *active)
				active = nil

				continue // re-examine i from Idle
			}

			lo := i - rule.ContinuationWindow
			trailing := series[lo : i+1]
			if rule.IsContinued(trailing, active.Positive, active.Len(), mean, stdev) {
				active.End = i + 1
				i++

				continue
			}

			signals = append(signals, *active)
			active = nil

			continue // re-examine i from Idle, do not skip it
		}

		// Idle.
		if i == n {
			break
		}
		if i+rule.Window > n {
			break // not enough data left to ever open a signal
		}

		if rule.Detect(series[i:i+rule.Window], mean, stdev) {
			positive := rule.Orientation(series[i:i+rule.OrientationWindow], mean, stdev)
			active = &Signal{
				RuleId:   rule.Id,
				Start:    i,
				End:      i + rule.Window,
				Positive: positive,
			}
			i += rule.Window

			continue
		}

		i++
	}

	return signals, nil
}

func validateSeries(series []float64) error {
	for _, x := range series {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrInvalidSeries
		}
	}

	return nil
}

func validateStats(mean, stdev float64) error {
	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(stdev) || math.IsInf(stdev, 0) {
		return ErrInvalidStats
	}
	if stdev <= 0 {
		return ErrInvalidStats
	}

	return nil
}
