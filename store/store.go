package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" database/sql driver
	"github.com/pkg/errors"

	"github.com/moottier/ccrev/batch"
)

const schema = `
CREATE TABLE IF NOT EXISTS batches (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	name         TEXT NOT NULL,
	catalog_name TEXT NOT NULL,
	mean         REAL NOT NULL,
	stdev        REAL NOT NULL,
	series_json  TEXT NOT NULL,
	index_json   TEXT NOT NULL,
	labels_json  TEXT NOT NULL,
	signals_json TEXT NOT NULL,
	saved_at     DATETIME NOT NULL
);`

// Store persists Batches to a SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) a SQLite file at path and ensures the
// batches table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "store: open")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "store: migrate")
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts b as a new row and returns its surrogate id.
func (s *Store) Save(ctx context.Context, b batch.Batch) (int64, error) {
	seriesJSON, err := json.Marshal(b.Series)
	if err != nil {
		return 0, errors.Wrap(err, "store: marshal series")
	}
	indexJSON, err := json.Marshal(b.Index)
	if err != nil {
		return 0, errors.Wrap(err, "store: marshal index")
	}
	labelsJSON, err := json.Marshal(b.Labels)
	if err != nil {
		return 0, errors.Wrap(err, "store: marshal labels")
	}
	signalsJSON, err := json.Marshal(b.Signals)
	if err != nil {
		return 0, errors.Wrap(err, "store: marshal signals")
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO batches
			(name, catalog_name, mean, stdev, series_json, index_json, labels_json, signals_json, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.Name, b.CatalogName, b.Mean, b.Stdev, string(seriesJSON), string(indexJSON), string(labelsJSON), string(signalsJSON), time.Now().UTC(),
	)
	if err != nil {
		return 0, errors.Wrap(err, "store: insert")
	}

	return res.LastInsertId()
}

// Load retrieves the StoredBatch with the given id.
func (s *Store) Load(ctx context.Context, id int64) (batch.StoredBatch, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, catalog_name, mean, stdev, series_json, index_json, labels_json, signals_json, saved_at
		 FROM batches WHERE id = ?`, id,
	)

	sb, err := scanStoredBatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return batch.StoredBatch{}, ErrNotFound
	}

	return sb, err
}

// List returns every StoredBatch, most recently saved first.
func (s *Store) List(ctx context.Context) ([]batch.StoredBatch, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, catalog_name, mean, stdev, series_json, index_json, labels_json, signals_json, saved_at
		 FROM batches ORDER BY saved_at DESC`,
	)
	if err != nil {
		return nil, errors.Wrap(err, "store: list")
	}
	defer rows.Close()

	var out []batch.StoredBatch
	for rows.Next() {
		sb, err := scanStoredBatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sb)
	}

	return out, rows.Err()
}

// rowScanner abstracts over *sql.Row and *sql.Rows so scanStoredBatch
// serves both Load and List.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStoredBatch(row rowScanner) (batch.StoredBatch, error) {
	var (
		sb                                     batch.StoredBatch
		seriesJSON, indexJSON, labelsJSON, sig string
	)
	err := row.Scan(&sb.Id, &sb.Name, &sb.CatalogName, &sb.Mean, &sb.Stdev, &seriesJSON, &indexJSON, &labelsJSON, &sig, &sb.SavedAt)
	if err != nil {
		return batch.StoredBatch{}, err
	}

	if err := json.Unmarshal([]byte(seriesJSON), &sb.Series); err != nil {
		return batch.StoredBatch{}, errors.Wrap(err, "store: unmarshal series")
	}
	if err := json.Unmarshal([]byte(indexJSON), &sb.Index); err != nil {
		return batch.StoredBatch{}, errors.Wrap(err, "store: unmarshal index")
	}
	if err := json.Unmarshal([]byte(labelsJSON), &sb.Labels); err != nil {
		return batch.StoredBatch{}, errors.Wrap(err, "store: unmarshal labels")
	}
	if err := json.Unmarshal([]byte(sig), &sb.Signals); err != nil {
		return batch.StoredBatch{}, errors.Wrap(err, "store: unmarshal signals")
	}

	return sb, nil
}
