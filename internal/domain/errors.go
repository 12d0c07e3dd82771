package domain

import "errors"

// ErrNotFound is the domain-level sentinel for missing records. Repository
// implementations translate their backend's not-found condition into it.
var ErrNotFound = errors.New("record not found")
