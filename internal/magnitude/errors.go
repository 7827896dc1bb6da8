package magnitude

import "errors"

var (
	// ErrZeroMagnitude indicates a zero scale factor.
	ErrZeroMagnitude = errors.New("magnitude: zero is not a valid magnitude")

	// ErrFactorLimit indicates a composite cofactor with no factor below FactorSearchLimit.
	ErrFactorLimit = errors.New("magnitude: factorization exceeds search limit")

	// ErrNotPrime indicates an explicit factor base that is not prime.
	ErrNotPrime = errors.New("magnitude: base is not prime")

	ErrNotRational = errors.New("magnitude: value is not rational")

	// ErrOverflow indicates a numerator or denominator that does not fit in uint64.
	ErrOverflow = errors.New("magnitude: value does not fit in 64 bits")

	// ErrIrrationalPower indicates a transcendental base left with a non-integer exponent.
	ErrIrrationalPower = errors.New("magnitude: transcendental base requires integer exponent")

	ErrNegativeRoot = errors.New("magnitude: even root of negative magnitude")

	ErrZeroRoot = errors.New("magnitude: zeroth root is undefined")
)
