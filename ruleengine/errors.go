package ruleengine

import "errors"

// Sentinel errors for ruleengine input validation and internal invariants.
var (
	// ErrInvalidStats indicates stdev <= 0 or a non-finite mean/stdev.
	ErrInvalidStats = errors.New("ruleengine: stdev must be > 0 and stats must be finite")

	// ErrInvalidSeries indicates a non-finite (NaN or Inf) sample in the series.
	ErrInvalidSeries = errors.New("ruleengine: series must contain only finite values")

	// ErrInvariantViolation indicates a programmer error: a malformed catalog
	// (empty, duplicate ids) or a malformed signal (start >= end, end > n).
	ErrInvariantViolation = errors.New("ruleengine: invariant violation")
)
