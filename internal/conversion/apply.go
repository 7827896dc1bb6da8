package conversion

import (
	"fmt"
	"math"
	"math/bits"
)

// Apply converts v under p. It assumes p passed Check; values outside the
// plan's bound may overflow, and truncating plans truncate toward zero.
func Apply[T Number](p Plan, v T) T {
	if p.IsIdentity() {
		return v
	}
	if p.Rep.Kind == KindFloating || p.Irrational {
		return T(float64(v) * p.Factor)
	}

	var out T
	switch {
	case p.Den == 1:
		out = v * T(p.Num)
	case divides(v, p.Den) || p.Order == DivFirst:
		out = v / T(p.Den) * T(p.Num)
	default:
		out = v * T(p.Num) / T(p.Den)
	}
	if p.Negative {
		out = -out
	}
	return out
}

// CheckValue reports whether converting the concrete value v is exact and in
// range. It does not consult the plan's bound.
func CheckValue[T Number](p Plan, v T) error {
	if p.Class == Rejected {
		return p.Err
	}
	if p.IsIdentity() {
		return nil
	}
	if p.Rep.Kind == KindFloating {
		if math.Abs(float64(v)*p.Factor) > p.Rep.MaxFloat() {
			return fmt.Errorf("%w: %v * %g", ErrOverflow, v, p.Factor)
		}
		return nil
	}
	if p.Irrational {
		return p.truncationError()
	}
	if !divides(v, p.Den) {
		return fmt.Errorf("%w: %v is not a multiple of %d", ErrTruncation, v, p.Den)
	}
	hi, lo := bits.Mul64(absUint64(v), p.Num)
	if hi >= p.Den {
		return fmt.Errorf("%w: %v * %d/%d", ErrOverflow, v, p.Num, p.Den)
	}
	if q, _ := bits.Div64(hi, lo, p.Den); q > p.Rep.Max() {
		return fmt.Errorf("%w: %v * %d/%d", ErrOverflow, v, p.Num, p.Den)
	}
	return nil
}

func divides[T Number](v T, den uint64) bool {
	if den <= 1 {
		return true
	}
	return absUint64(v)%den == 0
}

func absUint64[T Number](v T) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// AbsUint64 returns |v| as uint64, saturating for floats beyond its range.
func AbsUint64[T Number](v T) uint64 {
	f := float64(v)
	if f != math.Trunc(f) || math.Abs(f) >= math.MaxUint64 {
		a := math.Ceil(math.Abs(f))
		if a >= math.MaxUint64 {
			return math.MaxUint64
		}
		return uint64(a)
	}
	return absUint64(v)
}
