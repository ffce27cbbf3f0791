package counter

import "errors"

var (
	// ErrInvalidBounds is returned when min > max.
	ErrInvalidBounds = errors.New("invalid bounds")
	// ErrValueOutOfRange is returned when the initial value lies outside [min, max].
	ErrValueOutOfRange = errors.New("value out of range")
)
