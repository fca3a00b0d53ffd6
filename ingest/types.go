package ingest

// CSVSource identifies a single-sheet columnar file holding one batch's
// measurements, mirroring config.py's DATA_COL/INDEX_COL/DATA_START_ROW.
type CSVSource struct {
	// Path is the file to read.
	Path string

	// DataColumn is the zero-indexed column holding the measurement value.
	DataColumn int

	// IndexColumn is the zero-indexed column holding the row's label
	// (timestamp, sample id, ...). -1 means no index column: ReadSeries
	// synthesizes a 1-based positional index instead.
	IndexColumn int

	// HasHeader skips the first row when true.
	HasHeader bool
}

// Dir identifies a local directory to walk for batch files, mirroring
// extractor.py's DataExtractor.gen_files.
type Dir struct {
	// Path is the directory to list.
	Path string

	// Extensions restricts results to files ending in one of these
	// suffixes (e.g. ".csv"). Empty means no restriction.
	Extensions []string

	// Exclude skips any file whose name contains one of these substrings
	// (e.g. Excel's "~$" lock-file prefix).
	Exclude []string
}

// S3Dir identifies an S3 prefix to walk for batch files, the
// object-storage analogue of Dir for deployments that stage incoming
// batches in a bucket rather than on a local volume.
type S3Dir struct {
	Bucket     string
	Prefix     string
	Extensions []string
}
