package magnitude

import (
	"math"
	"math/big"
	"math/bits"
)

// FloatPrecision is the mantissa width used when evaluating a magnitude.
const FloatPrecision = 256

// Float64 returns the value of m rounded once to float64. Integer powers are
// evaluated at FloatPrecision bits; fractional powers fall back to math.Pow.
func (m Magnitude) Float64() float64 {
	f, _ := m.BigFloat().Float64()
	return f
}

// BigFloat evaluates m at FloatPrecision bits.
func (m Magnitude) BigFloat() *big.Float {
	z := new(big.Float).SetPrec(FloatPrecision).SetInt64(1)
	frac := 1.0
	for _, f := range m.factors {
		if !f.Exp.IsInteger() {
			frac *= math.Pow(f.Base.float64(), f.Exp.Float64())
			continue
		}
		e := f.Exp.Num()
		p := powBig(f.Base.bigFloat(FloatPrecision), absInt(e))
		if e < 0 {
			z.Quo(z, p)
		} else {
			z.Mul(z, p)
		}
	}
	if frac != 1 {
		z.Mul(z, new(big.Float).SetPrec(FloatPrecision).SetFloat64(frac))
	}
	if m.negative {
		z.Neg(z)
	}
	return z
}

func powBig(b *big.Float, e int64) *big.Float {
	result := new(big.Float).SetPrec(FloatPrecision).SetInt64(1)
	sq := new(big.Float).SetPrec(FloatPrecision).Set(b)
	for e > 0 {
		if e&1 == 1 {
			result.Mul(result, sq)
		}
		sq.Mul(sq, sq)
		e >>= 1
	}
	return result
}

// Numerator returns the numerator of a rational m in lowest terms, ignoring sign.
func (m Magnitude) Numerator() (uint64, error) {
	return m.part(1)
}

// Denominator returns the denominator of a rational m in lowest terms.
func (m Magnitude) Denominator() (uint64, error) {
	return m.part(-1)
}

func (m Magnitude) part(sign int) (uint64, error) {
	if !m.IsRational() {
		return 0, ErrNotRational
	}
	out := uint64(1)
	for _, f := range m.factors {
		e := f.Exp.Num()
		if (sign > 0 && e < 0) || (sign < 0 && e > 0) {
			continue
		}
		for k := absInt(e); k > 0; k-- {
			hi, lo := bits.Mul64(out, f.Base.prime)
			if hi != 0 {
				return 0, ErrOverflow
			}
			out = lo
		}
	}
	return out, nil
}

func absInt(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
