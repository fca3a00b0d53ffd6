// Package ingest reads measurement series and locates batch files for
// the control-chart engine. It is the Go analogue of the Python
// original's ccrev/extractor.py and ccrev/data_processing.py: column
// extraction from a worksheet plus directory traversal filtered by file
// extension and an ignore list.
//
// The Python original reads Excel workbooks via openpyxl; no
// spreadsheet library is available anywhere in this repository's
// dependency set, so CSVSource reads the columnar-CSV equivalent
// instead via the standard library's encoding/csv (see DESIGN.md).
// Dir and S3Dir mirror the original's directory-listing generator,
// the latter backed by aws-sdk-go for batches staged in object storage.
package ingest
