// Package dimension models physical dimensions as integer exponent vectors
// over a fixed set of base dimensions.
package dimension

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/unitlab/internal/rational"
)

var ErrFractionalExponent = errors.New("dimension: power leaves a fractional exponent")

// Base identifies one base physical dimension.
type Base int

const (
	Length Base = iota
	Mass
	Time
	Current
	Temperature
	Amount
	LuminousIntensity
	Angle
	numBases
)

var baseSymbols = [numBases]string{"L", "M", "T", "I", "Θ", "N", "J", "A"}

var baseNames = [numBases]string{
	"length", "mass", "time", "current", "temperature", "amount", "luminous_intensity", "angle",
}

func (b Base) String() string {
	if b < 0 || b >= numBases {
		return fmt.Sprintf("Base(%d)", int(b))
	}
	return baseNames[b]
}

// Bases lists every base dimension in canonical order.
func Bases() []Base {
	out := make([]Base, numBases)
	for i := range out {
		out[i] = Base(i)
	}
	return out
}

// ParseBase resolves a base dimension by name.
func ParseBase(name string) (Base, error) {
	for i, n := range baseNames {
		if n == name {
			return Base(i), nil
		}
	}
	return 0, fmt.Errorf("dimension: unknown base %q", name)
}

// Dimension is a vector of exponents. The zero value is dimensionless, and
// two dimensions are equal exactly when == holds.
type Dimension [numBases]int

// Dimensionless is the zero vector.
var Dimensionless = Dimension{}

// Of returns the dimension with a single exponent of one for b.
func Of(b Base) Dimension {
	var d Dimension
	d[b] = 1
	return d
}

func (d Dimension) Mul(o Dimension) Dimension {
	for i := range d {
		d[i] += o[i]
	}
	return d
}

func (d Dimension) Div(o Dimension) Dimension {
	for i := range d {
		d[i] -= o[i]
	}
	return d
}

// Pow scales every exponent by n.
func (d Dimension) Pow(n int) Dimension {
	for i := range d {
		d[i] *= n
	}
	return d
}

// PowRational scales every exponent by p; every result must stay an integer.
func (d Dimension) PowRational(p rational.Rational) (Dimension, error) {
	var out Dimension
	for i, e := range d {
		r, err := rational.Int(int64(e)).CheckedMul(p)
		if err != nil {
			return d, err
		}
		if !r.IsInteger() {
			return d, fmt.Errorf("%w: %s^(%s)", ErrFractionalExponent, Base(i), r)
		}
		out[i] = int(r.Num())
	}
	return out, nil
}

func (d Dimension) Exponent(b Base) int   { return d[b] }
func (d Dimension) IsDimensionless() bool { return d == Dimensionless }

// String renders e.g. "L·T^-1"; dimensionless renders as "1".
func (d Dimension) String() string {
	var parts []string
	for i, e := range d {
		switch e {
		case 0:
			continue
		case 1:
			parts = append(parts, baseSymbols[i])
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", baseSymbols[i], e))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}
