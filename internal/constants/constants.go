// Package constants provides physical constants whose values live in the
// magnitude of a unit, so arithmetic with them stays exact until the value is
// read out.
package constants

import (
	"fmt"

	"github.com/san-kum/unitlab/internal/catalog"
	"github.com/san-kum/unitlab/internal/conversion"
	"github.com/san-kum/unitlab/internal/magnitude"
	"github.com/san-kum/unitlab/internal/quantity"
	"github.com/san-kum/unitlab/internal/rational"
	"github.com/san-kum/unitlab/internal/unit"
)

// Constant is a named unit equal to one instance of the constant.
type Constant struct {
	Name string
	unit unit.Unit
}

// New scales u by m and labels the result.
func New(label string, u unit.Unit, m magnitude.Magnitude) Constant {
	return Constant{Name: label, unit: u.Scaled(m).Labeled(label)}
}

func (c Constant) Unit() unit.Unit                { return c.unit }
func (c Constant) Magnitude() magnitude.Magnitude { return c.unit.Magnitude() }

// Quantity returns the constant as a float64 quantity of value 1.
func (c Constant) Quantity() quantity.Quantity[float64] {
	return quantity.Of(1.0, c.unit)
}

// In expresses the constant in u as an approximate value.
func (c Constant) In(u unit.Unit) (float64, error) {
	q, err := c.Quantity().In(u)
	if err != nil {
		return 0, err
	}
	return q.Value(), nil
}

func (c Constant) String() string {
	return fmt.Sprintf("%s = %s", c.Name, c.unit.Magnitude())
}

// As returns n of the constant as a quantity of T in the unit u. Conversion
// is exact or fails, as with Quantity.In.
func As[T conversion.Number](c Constant, n T, u unit.Unit) (quantity.Quantity[T], error) {
	return quantity.Of(n, c.unit).In(u)
}

var (
	joules   = catalog.Joules
	seconds  = catalog.Seconds
	meters   = catalog.Meters
	kelvins  = catalog.Kelvins
	coulombs = catalog.Coulombs
)

func exact(coef int64, exp10 int) magnitude.Magnitude {
	return magnitude.MustInt(coef).Mul(magnitude.PowerOfTen(exp10))
}

var (
	SpeedOfLight = New("c", unit.Quotient(meters, seconds), magnitude.MustInt(299792458))

	Planck = New("h", unit.Product(joules, seconds), exact(662607015, -42))

	ReducedPlanck = New("ħ", unit.Product(joules, seconds),
		exact(662607015, -42).Div(magnitude.MustInt(2)).Div(magnitude.Pi()))

	StandardGravity = New("g_0", unit.Quotient(meters, unit.MustPow(seconds, rational.Int(2))),
		magnitude.MustRatio(980665, 100000))

	Avogadro = New("N_A", unit.Inverse(catalog.Moles), exact(602214076, 15))

	ElementaryCharge = New("e", coulombs, exact(1602176634, -28))

	Boltzmann = New("k_B", unit.Quotient(joules, kelvins), exact(1380649, -29))
)

// All lists the predefined constants.
var All = []Constant{
	SpeedOfLight,
	Planck,
	ReducedPlanck,
	StandardGravity,
	Avogadro,
	ElementaryCharge,
	Boltzmann,
}
