package colorconv

import "errors"

var (
	// ErrInvalidFormat is returned for malformed HEX strings.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOutOfRange is returned when a component lies outside its domain.
	ErrOutOfRange = errors.New("out of range")
)
