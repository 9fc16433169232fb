package resource

import "errors"

var (
	// ErrNotFound is returned when the requested file is not part of the bundle.
	ErrNotFound = errors.New("ERR#0115: data file not found or errored")

	// ErrEmpty is returned when the file exists but holds no usable table.
	ErrEmpty = errors.New("ERR#0115: data file was empty or errored")
)
