package store

import "errors"

// ErrNotFound indicates no StoredBatch exists with the requested id.
var ErrNotFound = errors.New("store: batch not found")
