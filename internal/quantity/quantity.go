// Package quantity tags numeric values with units and enforces dimensional
// safety on arithmetic.
//
// A [Quantity] holds a value of any Go numeric type in a ratio unit. Sums,
// differences and comparisons require equal dimensions and bring both
// operands to the finer of the two units; for integral types that step must
// be exact or the operation fails. Products and quotients compose units and
// never convert.
//
// A [Point] holds a value on an affine scale such as Celsius. Points can be
// converted, shifted by a Quantity and subtracted from each other, which
// yields a Quantity in the scale's difference unit.
//
// Conversions consult [conversion.DefaultCache]. Hot paths that convert many
// values between the same pair of units should build a [Converter] once.
package quantity

import (
	"fmt"

	"github.com/san-kum/unitlab/internal/conversion"
	"github.com/san-kum/unitlab/internal/unit"
)

type Number = conversion.Number

// Quantity is a value of type T measured in a ratio unit.
type Quantity[T Number] struct {
	value T
	unit  unit.Unit
}

// Of pairs v with u.
func Of[T Number](v T, u unit.Unit) Quantity[T] {
	return Quantity[T]{value: v, unit: u}
}

func (q Quantity[T]) Value() T        { return q.value }
func (q Quantity[T]) Unit() unit.Unit { return q.unit }

func (q Quantity[T]) String() string {
	return fmt.Sprintf("%v %s", q.value, q.unit)
}

// In converts q to the unit to. The concrete value must convert exactly for
// integral T and stay in range for every T.
func (q Quantity[T]) In(to unit.Unit) (Quantity[T], error) {
	p := conversion.DefaultCache.Plan(q.unit, to, conversion.RepOf[T]().WithBound(1))
	if err := conversion.CheckValue(p, q.value); err != nil {
		return q, err
	}
	return Of(conversion.Apply(p, q.value), to), nil
}

// InLossy converts q to the unit to, accepting truncation toward zero for
// integral T. Overflow is still rejected.
func (q Quantity[T]) InLossy(to unit.Unit) (Quantity[T], error) {
	rep := conversion.RepOf[T]()
	p := conversion.Classify(q.unit, to, rep.WithBound(max(conversion.AbsUint64(q.value), 1)))
	if err := p.Check(true); err != nil {
		return q, err
	}
	// The bound saturates for large floats; vet the actual product.
	if rep.Kind == conversion.KindFloating || p.Irrational {
		if err := rep.CheckFloat(float64(q.value) * p.Factor); err != nil {
			return q, fmt.Errorf("%v * %g: %w", q.value, p.Factor, err)
		}
	}
	return Of(conversion.Apply(p, q.value), to), nil
}

// Approximate returns the value expressed in the canonical unit of its
// dimension.
func (q Quantity[T]) Approximate() float64 {
	return float64(q.value) * q.unit.Magnitude().Float64()
}

// Scale multiplies the value by a dimensionless k.
func (q Quantity[T]) Scale(k T) Quantity[T] { return Of(q.value*k, q.unit) }

// DivideBy divides the value by a dimensionless k.
func (q Quantity[T]) DivideBy(k T) Quantity[T] { return Of(q.value/k, q.unit) }

func (q Quantity[T]) Neg() Quantity[T] { return Of(-q.value, q.unit) }

// Add returns a+b in the finer of the two units.
func Add[T Number](a, b Quantity[T]) (Quantity[T], error) {
	u, x, y, err := align(a, b)
	if err != nil {
		return a, err
	}
	return Of(x+y, u), nil
}

// Sub returns a-b in the finer of the two units.
func Sub[T Number](a, b Quantity[T]) (Quantity[T], error) {
	u, x, y, err := align(a, b)
	if err != nil {
		return a, err
	}
	return Of(x-y, u), nil
}

// Mul composes units; no conversion takes place.
func Mul[T Number](a, b Quantity[T]) Quantity[T] {
	return Of(a.value*b.value, unit.Product(a.unit, b.unit))
}

// Div composes units; no conversion takes place.
func Div[T Number](a, b Quantity[T]) Quantity[T] {
	return Of(a.value/b.value, unit.Quotient(a.unit, b.unit))
}

// Compare returns -1, 0 or +1 after bringing a and b to a common unit.
func Compare[T Number](a, b Quantity[T]) (int, error) {
	_, x, y, err := align(a, b)
	if err != nil {
		return 0, err
	}
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	}
	return 0, nil
}

// Equal reports whether a and b denote the same amount.
func Equal[T Number](a, b Quantity[T]) (bool, error) {
	c, err := Compare(a, b)
	return c == 0, err
}

// Less reports whether a < b.
func Less[T Number](a, b Quantity[T]) (bool, error) {
	c, err := Compare(a, b)
	return c < 0, err
}

func align[T Number](a, b Quantity[T]) (unit.Unit, T, T, error) {
	if !unit.Convertible(a.unit, b.unit) {
		return a.unit, 0, 0, fmt.Errorf("%w: %s vs %s", unit.ErrIncompatible, a.unit, b.unit)
	}
	if a.unit.Equal(b.unit) {
		return a.unit, a.value, b.value, nil
	}
	target := unit.Finer(a.unit, b.unit)
	x, err := a.In(target)
	if err != nil {
		return target, 0, 0, fmt.Errorf("%w: %s and %s: %w", ErrNoCommonUnit, a.unit, b.unit, err)
	}
	y, err := b.In(target)
	if err != nil {
		return target, 0, 0, fmt.Errorf("%w: %s and %s: %w", ErrNoCommonUnit, a.unit, b.unit, err)
	}
	return target, x.value, y.value, nil
}
