package ingest

import "errors"

var (
	// ErrNoMatchingFiles indicates a directory walk found no files with
	// any of the requested extensions.
	ErrNoMatchingFiles = errors.New("ingest: no matching files found")

	// ErrColumnOutOfRange indicates a negative DataColumn. Rows too short
	// to hold the selected columns are skipped rather than reported.
	ErrColumnOutOfRange = errors.New("ingest: column index out of range")

	// ErrNotNumeric indicates a selected data cell could not be parsed as
	// a float64.
	ErrNotNumeric = errors.New("ingest: data column contains a non-numeric cell")
)
