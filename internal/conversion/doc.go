// Package conversion decides how a value moves between two units of the same
// dimension for a given numeric representation.
//
// [Classify] computes the exact ratio of the two unit magnitudes and sorts the
// conversion into one of four classes:
//
//   - [Exact]: a single integer multiply (or no-op) that cannot overflow for
//     the declared bound; for floating representations, identity or a
//     power-of-two scale.
//   - [Truncating]: an integral representation and a ratio with a nontrivial
//     denominator or a transcendental factor. Allowed per value when the
//     denominator divides it, or always when the caller acknowledges loss.
//   - [Floating]: a floating representation and any other ratio. One rounding
//     of a factor evaluated at high precision.
//   - [Rejected]: incompatible dimensions, overflow for the bound, or a
//     negative ratio into an unsigned representation.
//
// Plans are pure values. [Cache] memoizes them per (from, to, representation)
// so repeated conversions cost one lookup and one multiply.
package conversion
