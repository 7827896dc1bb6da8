package quantity

import (
	"fmt"

	"github.com/san-kum/unitlab/internal/conversion"
	"github.com/san-kum/unitlab/internal/magnitude"
	"github.com/san-kum/unitlab/internal/unit"
)

// Point is a value of type T on an affine scale.
type Point[T Number] struct {
	value T
	unit  unit.AffineUnit
}

// PointOf pairs v with the affine unit u.
func PointOf[T Number](v T, u unit.AffineUnit) Point[T] {
	return Point[T]{value: v, unit: u}
}

func (p Point[T]) Value() T              { return p.value }
func (p Point[T]) Unit() unit.AffineUnit { return p.unit }

func (p Point[T]) String() string {
	return fmt.Sprintf("%v %s", p.value, p.unit)
}

// In moves p to another affine scale of the same dimension. Both the scale
// factor and the origin shift must be exact for integral T.
func (p Point[T]) In(to unit.AffineUnit) (Point[T], error) {
	return p.convert(to, false)
}

// InLossy is In with truncation toward zero accepted.
func (p Point[T]) InLossy(to unit.AffineUnit) (Point[T], error) {
	return p.convert(to, true)
}

func (p Point[T]) convert(to unit.AffineUnit, lossy bool) (Point[T], error) {
	if p.unit.Equal(to) {
		return PointOf(p.value, to), nil
	}
	if !unit.AffineConvertible(p.unit, to) {
		return p, fmt.Errorf("%w: %s vs %s", unit.ErrIncompatible, p.unit, to)
	}

	// Shift to the target origin while still in source units, then rescale:
	// v' = (v + (o_from - o_to)/m_from) * m_from/m_to.
	shift, zero, err := originShift(p.unit, to)
	if err != nil {
		return p, err
	}

	rep := conversion.RepOf[T]()
	if lossy || rep.Kind == conversion.KindFloating {
		plan := conversion.DefaultCache.Plan(p.unit.Difference(), to.Difference(), rep.WithBound(1))
		if err := plan.Check(true); err != nil {
			return p, err
		}
		v := float64(p.value)
		if !zero {
			v += shift.Float64()
		}
		out := v * plan.Factor
		if err := rep.CheckFloat(out); err != nil {
			return p, fmt.Errorf("%v %s in %s: %w", p.value, p.unit, to, err)
		}
		return PointOf(T(out), to), nil
	}

	v := p.value
	if !zero {
		if v, err = shiftBy(p.value, shift, p.unit); err != nil {
			return p, err
		}
	}
	q, err := Of(v, p.unit.Difference()).In(to.Difference())
	if err != nil {
		return p, err
	}
	return PointOf(q.value, to), nil
}

// originShift expresses o_from - o_to in units of from's difference unit.
// zero is set when the origins coincide.
func originShift(from, to unit.AffineUnit) (shift magnitude.Magnitude, zero bool, err error) {
	diff := from.Origin().Sub(to.Origin())
	if diff.IsZero() {
		return magnitude.One, true, nil
	}
	m, err := magnitude.Ratio(diff.Num(), diff.Den())
	if err != nil {
		return magnitude.One, false, err
	}
	return m.Div(from.Magnitude()), false, nil
}

// shiftBy adds a whole origin shift to v, refusing results outside T.
func shiftBy[T Number](v T, shift magnitude.Magnitude, from unit.AffineUnit) (T, error) {
	if !shift.IsInteger() {
		return v, fmt.Errorf("%w: origin shift %s %s is not whole", conversion.ErrTruncation, shift, from.Difference())
	}
	rep := conversion.RepOf[T]()
	n, err := shift.Numerator()
	if err != nil || n > rep.Max() {
		return v, fmt.Errorf("%w: origin shift %s", conversion.ErrOverflow, shift)
	}
	d := T(n)
	if shift.IsNegative() {
		if s := v - d; (rep.Signed && s < v) || (!rep.Signed && v >= d) {
			return s, nil
		}
	} else if s := v + d; s > v {
		return s, nil
	}
	return v, fmt.Errorf("%w: %v %s shifted by %s", conversion.ErrOverflow, v, from.Difference(), shift)
}

// Add shifts p by the interval q.
func (p Point[T]) Add(q Quantity[T]) (Point[T], error) {
	d, err := q.In(p.unit.Difference())
	if err != nil {
		return p, err
	}
	return PointOf(p.value+d.value, p.unit), nil
}

// Sub shifts p back by the interval q.
func (p Point[T]) Sub(q Quantity[T]) (Point[T], error) {
	d, err := q.In(p.unit.Difference())
	if err != nil {
		return p, err
	}
	return PointOf(p.value-d.value, p.unit), nil
}

// Between returns a-b as an interval in the difference unit. Both points must
// use the same affine unit.
func Between[T Number](a, b Point[T]) (Quantity[T], error) {
	if !a.unit.Equal(b.unit) {
		return Quantity[T]{}, fmt.Errorf("%w: %s vs %s", ErrOriginMismatch, a.unit, b.unit)
	}
	return Of(a.value-b.value, a.unit.Difference()), nil
}

// Approximate returns the point's position in the canonical unit of its
// dimension, measured from that unit's zero.
func (p Point[T]) Approximate() float64 {
	return float64(p.value)*p.unit.Magnitude().Float64() + p.unit.Origin().Float64()
}
