package store

import "errors"

// ErrNotFound is returned by Get when no document has the given id.
var ErrNotFound = errors.New("document not found")
