package stats

import "errors"

// ErrInsufficientData indicates fewer than two samples were supplied;
// a sample standard deviation is undefined for n < 2.
var ErrInsufficientData = errors.New("stats: need at least 2 samples")
