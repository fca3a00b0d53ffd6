// Package store persists analyzed batches to SQLite so a report or web
// view can be regenerated without re-ingesting the source file. Not
// present in the Python original (which only ever rendered a PDF and
// discarded its working data); backed by mattn/go-sqlite3, registered
// as a database/sql driver via blank import exactly as the retrieved
// corpus's anaximander_simulator does for its own sqlite-backed
// readers.
package store
