// Package magnitude represents positive (or sign-tagged) real scale factors
// exactly, as a canonical product of prime powers with rational exponents and
// optional transcendental factors such as π.
//
// A [Magnitude] is an immutable value. The zero value is the magnitude 1.
// Every operation returns a new value in canonical form:
//
//   - one entry per base, bases ordered primes ascending then transcendentals
//   - no zero exponents
//   - the sign is kept apart from the factors
//
// Zero is not a magnitude. Constructors reject it with [ErrZeroMagnitude].
//
// # Factorization
//
// Integer inputs are factorized by trial division up to [FactorSearchLimit].
// The remaining cofactor is accepted only if it is prime, which is decided
// exactly for every uint64.
//
// # Example
//
//	inch := magnitude.MustRatio(254, 10000) // meters per inch
//	cm := magnitude.PowerOfTen(-2)
//	r := inch.Div(cm)                       // 127/50
//	num, _ := r.Numerator()                 // 127
package magnitude
