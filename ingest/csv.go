package ingest

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// ReadSeries reads the measurement column (and, if configured, the
// index column) out of a CSVSource. Rows too short to contain the wider
// of DataColumn/IndexColumn, and rows whose data cell is blank, are
// skipped, like the original's blank-cell exclusion
// (config.EXCLUDE_CELL_VALUES); any other non-numeric data cell,
// "#REF!" included, fails with ErrNotNumeric.
func ReadSeries(src CSVSource) (series []float64, index []string, err error) {
	if src.DataColumn < 0 {
		return nil, nil, errors.Wrapf(ErrColumnOutOfRange, "%s: data column %d", src.Path, src.DataColumn)
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "ingest: open %s", src.Path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows rather than failing the whole batch

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "ingest: read %s", src.Path)
	}
	if src.HasHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	needCols := src.DataColumn
	if src.IndexColumn > needCols {
		needCols = src.IndexColumn
	}

	for rowNum, row := range rows {
		if len(row) <= needCols {
			continue // short row, treat like an excluded blank cell
		}

		raw := row[src.DataColumn]
		if raw == "" {
			continue
		}
		x, perr := strconv.ParseFloat(raw, 64)
		if perr != nil {
			return nil, nil, errors.Wrapf(ErrNotNumeric, "%s:%d", src.Path, rowNum)
		}
		series = append(series, x)

		if src.IndexColumn >= 0 {
			index = append(index, row[src.IndexColumn])
		} else {
			index = append(index, strconv.Itoa(len(series)))
		}
	}

	return series, index, nil
}
