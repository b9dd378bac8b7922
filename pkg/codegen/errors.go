package codegen

import "errors"

var (
	// ErrRange indicates an integer outside the representable range.
	ErrRange = errors.New("integer out of range")
	// ErrDigit indicates a place holding something other than 0..9.
	ErrDigit = errors.New("digit out of bounds")
	// ErrNumeralSet indicates a decimal position with no numeral set. The range
	// check rules this out for every value it admits.
	ErrNumeralSet = errors.New("invalid numeral set")
	// ErrBackend indicates an unknown output notation.
	ErrBackend = errors.New("unsupported backend")
)
