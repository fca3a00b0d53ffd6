// Package stats computes descriptive statistics for a raw measurement
// series — the mean/stdev pair the ruleengine package requires as
// input but never computes itself.
//
// It exists for callers that don't already have a mean/stdev from a
// worksheet cell or an upstream process: cmd/ccrev and server compute
// every batch's mean/stdev with it, mirroring the Python
// original's Reviewer.get_stats_data, which called statistics.mean/
// statistics.stdev whenever a worksheet address wasn't configured.
package stats
