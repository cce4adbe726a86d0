package hashtable

import "errors"

var (
	// ErrInvalidConfig signals an invalid table configuration.
	ErrInvalidConfig = errors.New("hashtable: invalid configuration")
)
