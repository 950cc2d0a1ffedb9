package shell

import "errors"

var (
	// ErrCapacityExceeded is returned by AddCommand once the command table is full.
	ErrCapacityExceeded = errors.New("shell: command table capacity exceeded")

	ErrInvalidConfig = errors.New("shell: invalid config")
)
