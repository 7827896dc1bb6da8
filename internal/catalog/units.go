package catalog

import (
	"github.com/san-kum/unitlab/internal/dimension"
	"github.com/san-kum/unitlab/internal/magnitude"
	"github.com/san-kum/unitlab/internal/rational"
	"github.com/san-kum/unitlab/internal/unit"
)

// Base units.
var (
	Meters   = unit.NewBase(dimension.Of(dimension.Length), "m")
	Grams    = unit.NewBase(dimension.Of(dimension.Mass), "g")
	Seconds  = unit.NewBase(dimension.Of(dimension.Time), "s")
	Amperes  = unit.NewBase(dimension.Of(dimension.Current), "A")
	Kelvins  = unit.NewBase(dimension.Of(dimension.Temperature), "K")
	Moles    = unit.NewBase(dimension.Of(dimension.Amount), "mol")
	Candelas = unit.NewBase(dimension.Of(dimension.LuminousIntensity), "cd")
	Radians  = unit.NewBase(dimension.Of(dimension.Angle), "rad")
)

// Length.
var (
	Centimeters   = unit.Centi(Meters)
	Kilometers    = unit.Kilo(Meters)
	Inches        = Centimeters.Scaled(magnitude.MustRatio(254, 100)).Labeled("in")
	Feet          = Inches.Scaled(magnitude.MustInt(12)).Labeled("ft")
	Yards         = Feet.Scaled(magnitude.MustInt(3)).Labeled("yd")
	Miles         = Feet.Scaled(magnitude.MustInt(5280)).Labeled("mi")
	Furlongs      = Yards.Scaled(magnitude.MustInt(220)).Labeled("fur")
	NauticalMiles = Meters.Scaled(magnitude.MustInt(1852)).Labeled("nmi")
)

// Time, mass and volume.
var (
	Minutes   = Seconds.Scaled(magnitude.MustInt(60)).Labeled("min")
	Hours     = Minutes.Scaled(magnitude.MustInt(60)).Labeled("h")
	Kilograms = unit.Kilo(Grams)
	Pounds    = Kilograms.Scaled(magnitude.MustRatio(45359237, 100000000)).Labeled("lb")
	Liters    = unit.MustPow(Centimeters, rational.Int(3)).Scaled(magnitude.MustInt(1000)).Labeled("L")
)

// Derived SI units.
var (
	Newtons  = unit.Quotient(unit.Product(Kilograms, Meters), unit.MustPow(Seconds, rational.Int(2))).Labeled("N")
	Joules   = unit.Product(Newtons, Meters).Labeled("J")
	Watts    = unit.Quotient(Joules, Seconds).Labeled("W")
	Coulombs = unit.Product(Amperes, Seconds).Labeled("C")
	Volts    = unit.Quotient(Watts, Amperes).Labeled("V")
	Ohms     = unit.Quotient(Volts, Amperes).Labeled("Ω")
	Knots    = unit.Quotient(NauticalMiles, Hours).Labeled("kn")
)

// Angles.
var (
	Degrees     = Radians.Scaled(magnitude.Pi().Div(magnitude.MustInt(180))).Labeled("deg")
	Revolutions = Radians.Scaled(magnitude.Pi().Mul(magnitude.MustInt(2))).Labeled("rev")
)

// Temperature. Rankines is the difference unit of the Fahrenheit scale.
var (
	Rankines   = Kelvins.Scaled(magnitude.MustRatio(5, 9)).Labeled("°R")
	Celsius    = unit.NewAffine(Kelvins, rational.New(27315, 100), "°C")
	Fahrenheit = unit.NewAffine(Rankines, rational.New(45967, 180), "°F")
)

type builtin struct {
	name, symbol string
	unit         unit.Unit
}

var builtins = []builtin{
	{"meter", "m", Meters},
	{"centimeter", "cm", Centimeters},
	{"kilometer", "km", Kilometers},
	{"inch", "in", Inches},
	{"foot", "ft", Feet},
	{"yard", "yd", Yards},
	{"mile", "mi", Miles},
	{"furlong", "fur", Furlongs},
	{"nautical_mile", "nmi", NauticalMiles},
	{"second", "s", Seconds},
	{"minute", "min", Minutes},
	{"hour", "h", Hours},
	{"gram", "g", Grams},
	{"kilogram", "kg", Kilograms},
	{"pound", "lb", Pounds},
	{"liter", "L", Liters},
	{"ampere", "A", Amperes},
	{"volt", "V", Volts},
	{"ohm", "Ω", Ohms},
	{"joule", "J", Joules},
	{"watt", "W", Watts},
	{"newton", "N", Newtons},
	{"coulomb", "C", Coulombs},
	{"kelvin", "K", Kelvins},
	{"rankine", "°R", Rankines},
	{"mole", "mol", Moles},
	{"candela", "cd", Candelas},
	{"radian", "rad", Radians},
	{"degree", "deg", Degrees},
	{"revolution", "rev", Revolutions},
	{"knot", "kn", Knots},
}

var builtinScales = []struct {
	name, symbol string
	unit         unit.AffineUnit
}{
	{"celsius", "degC", Celsius},
	{"fahrenheit", "degF", Fahrenheit},
}
