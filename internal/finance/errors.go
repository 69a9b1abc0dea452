package finance

import "errors"

var (
	// ErrMalformedInput is returned for transaction records that cannot be used.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidConfiguration is returned when a required precondition such as
	// a positive income is not met.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidInput is returned for values rejected at the boundary, e.g. negative
	// amounts or a non-positive time horizon.
	ErrInvalidInput = errors.New("invalid input")
)
