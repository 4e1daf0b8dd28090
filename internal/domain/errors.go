package domain

import "errors"

// ErrNotFound is returned by repositories and services when the requested
// record does not exist. Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// ErrValidation wraps input that fails a business rule. Handlers map it to 400.
var ErrValidation = errors.New("validation error")

// ErrQuoteInProgress is returned when another calculation holds the lock
// for the same unit and date range.
var ErrQuoteInProgress = errors.New("quote calculation already in progress")
