// Package unit pairs a Dimension with an exact Magnitude and composes units
// algebraically.
//
// There are two unit shapes. [Unit] is a ratio scale and supports products,
// quotients and powers. [AffineUnit] adds an origin offset (temperature
// scales) and deliberately has no composition methods, so an affine unit can
// never end up inside a compound unit.
//
// Unit identity is structural: two units are the same when their dimensions
// and magnitudes are equal. Labels are for display only.
package unit

import (
	"fmt"
	"strings"

	"github.com/san-kum/unitlab/internal/dimension"
	"github.com/san-kum/unitlab/internal/magnitude"
	"github.com/san-kum/unitlab/internal/rational"
)

type Unit struct {
	dim      dimension.Dimension
	mag      magnitude.Magnitude
	label    string
	compound bool
}

// One is the dimensionless unit with magnitude 1.
var One = Unit{}

// NewBase returns the canonical unit of d, whose magnitude is 1.
func NewBase(d dimension.Dimension, label string) Unit {
	return Unit{dim: d, label: label}
}

// New returns a unit of dimension d scaled by m relative to the canonical unit.
func New(d dimension.Dimension, m magnitude.Magnitude, label string) Unit {
	return Unit{dim: d, mag: m, label: label}
}

func (u Unit) Dimension() dimension.Dimension { return u.dim }
func (u Unit) Magnitude() magnitude.Magnitude { return u.mag }
func (u Unit) Label() string                  { return u.label }

// Labeled returns u with a new display label.
func (u Unit) Labeled(label string) Unit {
	u.label = label
	u.compound = false
	return u
}

// Scaled multiplies the unit's magnitude by m.
func (u Unit) Scaled(m magnitude.Magnitude) Unit {
	return Unit{
		dim:      u.dim,
		mag:      u.mag.Mul(m),
		label:    fmt.Sprintf("[%s %s]", formatScale(m), u.String()),
		compound: false,
	}
}

// Equal reports structural identity.
func (u Unit) Equal(o Unit) bool {
	return u.dim == o.dim && u.mag.Equal(o.mag)
}

// Key identifies the unit structurally.
func (u Unit) Key() string {
	return u.dim.String() + "|" + u.mag.Key()
}

func (u Unit) String() string {
	if u.label != "" {
		return u.label
	}
	if u.mag.IsOne() {
		return u.dim.String()
	}
	return fmt.Sprintf("[%s %s]", formatScale(u.mag), u.dim)
}

// Product returns a*b.
func Product(a, b Unit) Unit {
	return Unit{
		dim:      a.dim.Mul(b.dim),
		mag:      a.mag.Mul(b.mag),
		label:    a.operand() + " * " + b.operand(),
		compound: true,
	}
}

// Quotient returns a/b.
func Quotient(a, b Unit) Unit {
	return Unit{
		dim:      a.dim.Div(b.dim),
		mag:      a.mag.Div(b.mag),
		label:    a.operand() + " / " + b.operand(),
		compound: true,
	}
}

// Pow raises u to the rational power p. Both the magnitude and the
// dimension must admit the power.
func Pow(u Unit, p rational.Rational) (Unit, error) {
	d, err := u.dim.PowRational(p)
	if err != nil {
		return u, err
	}
	m, err := u.mag.Pow(p)
	if err != nil {
		return u, err
	}
	return Unit{
		dim:      d,
		mag:      m,
		label:    fmt.Sprintf("%s^%s", u.operand(), exponentLabel(p)),
		compound: true,
	}, nil
}

// MustPow is Pow for package-level definitions.
func MustPow(u Unit, p rational.Rational) Unit {
	out, err := Pow(u, p)
	if err != nil {
		panic(err)
	}
	return out
}

// Root returns the n-th root of u.
func Root(u Unit, n int64) (Unit, error) {
	if n == 0 {
		return u, magnitude.ErrZeroRoot
	}
	return Pow(u, rational.New(1, n))
}

// Inverse returns 1/u.
func Inverse(u Unit) Unit { return Quotient(One.Labeled("1"), u) }

// Convertible reports whether a and b measure the same dimension.
func Convertible(a, b Unit) bool { return a.dim == b.dim }

// Ratio returns mag(from)/mag(to), the factor that takes a value in from to a
// value in to.
func Ratio(from, to Unit) (magnitude.Magnitude, error) {
	if !Convertible(from, to) {
		return magnitude.One, fmt.Errorf("%w: %s vs %s", ErrIncompatible, from.dim, to.dim)
	}
	return from.mag.Div(to.mag), nil
}

// Finer returns whichever unit has the smaller magnitude; ties go to a.
func Finer(a, b Unit) Unit {
	if magnitude.Less(b.mag.Abs(), a.mag.Abs()) {
		return b
	}
	return a
}

func (u Unit) operand() string {
	if u.compound {
		return "(" + u.String() + ")"
	}
	return u.String()
}

func exponentLabel(p rational.Rational) string {
	if p.IsInteger() {
		return p.String()
	}
	return "(" + p.String() + ")"
}

// formatScale prefers num/den for rationals that fit, the factor form otherwise.
func formatScale(m magnitude.Magnitude) string {
	if m.IsRational() {
		num, errN := m.Numerator()
		den, errD := m.Denominator()
		if errN == nil && errD == nil {
			sign := ""
			if m.IsNegative() {
				sign = "-"
			}
			if den == 1 {
				return fmt.Sprintf("%s%d", sign, num)
			}
			return fmt.Sprintf("%s%d/%d", sign, num, den)
		}
	}
	return strings.ReplaceAll(m.String(), " ", "")
}
