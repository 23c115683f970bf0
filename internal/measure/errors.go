package measure

import "errors"

// Sentinel errors returned by constructors and combinators.
var (
	ErrUnknownUnit       = errors.New("unknown unit")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidMagnitude  = errors.New("invalid magnitude")
)
