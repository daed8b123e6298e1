package domain

import "errors"

// ErrMalformedTape is returned when a tape does not follow the Blank-delimited field layout a machine expects.
var ErrMalformedTape = errors.New("malformed tape")

// ErrUnknownOperation is returned when an operation name cannot be parsed.
var ErrUnknownOperation = errors.New("unknown operation")

// ErrRecordNotFound is returned when a record ID cannot be found in the store.
var ErrRecordNotFound = errors.New("record not found")

// ErrLimitExceeded is returned when a simulation is larger than the configured Limit allows.
var ErrLimitExceeded = errors.New("limit exceeded")
