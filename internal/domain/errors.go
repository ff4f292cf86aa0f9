package domain

import "errors"

// ErrNotFound signals that a referenced entity does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrStorage wraps any backend failure from the persistence adapter.
// Callers never inspect driver-specific error shapes; they only test
// against this sentinel.
var ErrStorage = errors.New("storage failure")
