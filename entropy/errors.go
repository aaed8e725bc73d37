package entropy

import "errors"

var (
	// ErrInvalidMethod indicates an unrecognized estimation Method token.
	// Unknown methods fail explicitly; they are never silently defaulted.
	ErrInvalidMethod = errors.New("entropy: unknown estimation method")

	// ErrLengthMismatch indicates paired samples of unequal length passed
	// to a joint-entropy or mutual-information entry point.
	ErrLengthMismatch = errors.New("entropy: paired samples must have equal length")
)
