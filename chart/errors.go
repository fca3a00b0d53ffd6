package chart

import "errors"

// ErrEmptyBatch is returned by Render when the batch has no samples to plot.
var ErrEmptyBatch = errors.New("chart: batch has no samples")
