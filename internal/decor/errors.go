package decor

import "errors"

// Errors returned by decor operations.
var (
	// ErrEmptyRange indicates an attempt to construct a range decoration
	// with from >= to.
	ErrEmptyRange = errors.New("decor: range decoration requires from < to")
)
