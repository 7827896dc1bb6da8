package unit

import (
	"fmt"

	"github.com/san-kum/unitlab/internal/dimension"
	"github.com/san-kum/unitlab/internal/magnitude"
	"github.com/san-kum/unitlab/internal/rational"
)

// AffineUnit is a ratio unit whose zero sits at Origin, measured in the
// canonical unit of its dimension. Celsius is kelvin-sized with origin 273.15.
type AffineUnit struct {
	diff   Unit
	origin rational.Rational
	label  string
}

// NewAffine defines an affine scale over the difference unit diff.
func NewAffine(diff Unit, origin rational.Rational, label string) AffineUnit {
	return AffineUnit{diff: diff, origin: origin, label: label}
}

// Difference is the ratio unit that measures intervals on this scale.
func (a AffineUnit) Difference() Unit                { return a.diff }
func (a AffineUnit) Origin() rational.Rational       { return a.origin }
func (a AffineUnit) Dimension() dimension.Dimension  { return a.diff.dim }
func (a AffineUnit) Magnitude() magnitude.Magnitude  { return a.diff.mag }
func (a AffineUnit) Label() string                   { return a.label }
func (a AffineUnit) Labeled(label string) AffineUnit { a.label = label; return a }

func (a AffineUnit) Equal(o AffineUnit) bool {
	return a.diff.Equal(o.diff) && a.origin.Equal(o.origin)
}

func (a AffineUnit) Key() string {
	return a.diff.Key() + "@" + a.origin.String()
}

func (a AffineUnit) String() string {
	if a.label != "" {
		return a.label
	}
	return fmt.Sprintf("%s@%s", a.diff, a.origin)
}

// AffineConvertible reports whether two affine units share a dimension.
func AffineConvertible(a, b AffineUnit) bool { return a.diff.dim == b.diff.dim }
