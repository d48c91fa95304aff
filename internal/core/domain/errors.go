package domain

import "errors"

// Domain errors represent transform validation failures.
// These are distinct from adapter-level parse errors.
var (
	// ErrDegenerateRange indicates a numeric sequence with zero range or
	// zero variance, for which min-max scaling and z-score standardisation
	// are undefined. The library signals rather than silently returning a
	// default; the caller decides the fallback.
	ErrDegenerateRange = errors.New("degenerate range")

	// ErrInvalidRange indicates inverted clip bounds (min > max).
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidDomain indicates input outside a transform's mathematical
	// domain, such as a non-positive value passed to the log transform.
	// The whole batch is rejected; no element is dropped or coerced.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrInvalidInput indicates malformed input rejected by an adapter
	// before it reaches the transform library.
	ErrInvalidInput = errors.New("invalid input")
)
