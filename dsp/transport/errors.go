package transport

import "errors"

var (
	// ErrInvalidCapacity is returned when a capacity is not positive.
	ErrInvalidCapacity = errors.New("transport: capacity must be > 0")
	// ErrInvalidBlockSize is returned when a block size is not positive.
	ErrInvalidBlockSize = errors.New("transport: block size must be > 0")
)
