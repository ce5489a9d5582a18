// Package store translates domain operations into calls against the
// document database. Every method takes a context and maps driver
// errors to the package sentinels; callers never see mongo errors for
// the expected failure modes.
package store

import "errors"

var (
	// ErrNotFound means no document matched the given id/owner filter.
	// A malformed object id is reported the same way.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate means an insert violated a unique index.
	ErrDuplicate = errors.New("duplicate record")
)
