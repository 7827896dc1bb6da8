package unit

import (
	"github.com/san-kum/unitlab/internal/magnitude"
	"github.com/san-kum/unitlab/internal/rational"
)

// Prefix scales a unit by a power of ten (SI) or of two (binary).
type Prefix struct {
	Name   string
	Symbol string
	Scale  magnitude.Magnitude
}

// Apply returns the prefixed unit, labeled with the prefix symbol.
func (p Prefix) Apply(u Unit) Unit {
	return u.Scaled(p.Scale).Labeled(p.Symbol + u.Label())
}

func binary(n int64) magnitude.Magnitude {
	m, _ := magnitude.MustInt(2).Pow(rational.Int(n))
	return m
}

var (
	PrefixNano  = Prefix{"nano", "n", magnitude.PowerOfTen(-9)}
	PrefixMicro = Prefix{"micro", "u", magnitude.PowerOfTen(-6)}
	PrefixMilli = Prefix{"milli", "m", magnitude.PowerOfTen(-3)}
	PrefixCenti = Prefix{"centi", "c", magnitude.PowerOfTen(-2)}
	PrefixDeci  = Prefix{"deci", "d", magnitude.PowerOfTen(-1)}
	PrefixDeka  = Prefix{"deka", "da", magnitude.PowerOfTen(1)}
	PrefixHecto = Prefix{"hecto", "h", magnitude.PowerOfTen(2)}
	PrefixKilo  = Prefix{"kilo", "k", magnitude.PowerOfTen(3)}
	PrefixMega  = Prefix{"mega", "M", magnitude.PowerOfTen(6)}
	PrefixGiga  = Prefix{"giga", "G", magnitude.PowerOfTen(9)}
	PrefixTera  = Prefix{"tera", "T", magnitude.PowerOfTen(12)}

	PrefixKibi = Prefix{"kibi", "Ki", binary(10)}
	PrefixMebi = Prefix{"mebi", "Mi", binary(20)}
	PrefixGibi = Prefix{"gibi", "Gi", binary(30)}
)

// Prefixes lists the SI and binary prefixes by name.
var Prefixes = []Prefix{
	PrefixNano, PrefixMicro, PrefixMilli, PrefixCenti, PrefixDeci, PrefixDeka,
	PrefixHecto, PrefixKilo, PrefixMega, PrefixGiga, PrefixTera,
	PrefixKibi, PrefixMebi, PrefixGibi,
}

func Nano(u Unit) Unit  { return PrefixNano.Apply(u) }
func Micro(u Unit) Unit { return PrefixMicro.Apply(u) }
func Milli(u Unit) Unit { return PrefixMilli.Apply(u) }
func Centi(u Unit) Unit { return PrefixCenti.Apply(u) }
func Kilo(u Unit) Unit  { return PrefixKilo.Apply(u) }
func Mega(u Unit) Unit  { return PrefixMega.Apply(u) }
