package validation

import "errors"

var (
	// ErrMalformedRecord is returned when a sample record lacks its identifier.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnsupportedValue is returned when a field holds a non-scalar value.
	ErrUnsupportedValue = errors.New("unsupported field value")
)
