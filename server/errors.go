package server

import "errors"

// ErrMissingFile is returned when a POST /batches request has no "file" part.
var ErrMissingFile = errors.New("server: request has no \"file\" part")
