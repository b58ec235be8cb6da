package services

import "errors"

var (
	// ErrNotFound reports a missing record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput reports a request the store must never see: a missing
	// or malformed field, or a reference to a record that does not exist.
	ErrInvalidInput = errors.New("invalid input")
	// ErrWriteFailed wraps a store error raised while inserting or deleting.
	ErrWriteFailed = errors.New("write failed")
	// ErrInvalidPage reports a page number below 1 or not a number.
	ErrInvalidPage = errors.New("invalid page")
)
