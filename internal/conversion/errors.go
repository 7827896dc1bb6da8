package conversion

import "errors"

var (
	// ErrOverflow indicates a conversion that can exceed the representation's range.
	ErrOverflow = errors.New("conversion: overflow risk for representation")

	// ErrTruncation indicates an integral conversion that would drop a remainder.
	ErrTruncation = errors.New("conversion: integral conversion would truncate")

	// ErrSignLoss indicates a negative ratio into an unsigned representation.
	ErrSignLoss = errors.New("conversion: negative factor in unsigned representation")

	ErrUnknownRep = errors.New("conversion: unknown representation")
)
