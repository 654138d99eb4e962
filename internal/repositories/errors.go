package repositories

import "errors"

// ErrNotFound is returned when a referenced record does not exist. Handlers
// translate it to a 404; everything else from a store is surfaced as-is.
var ErrNotFound = errors.New("record not found")
