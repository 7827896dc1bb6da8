package magnitude

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseDecimal reads an exact decimal literal such as "0.3048" or "-1.5e3".
func ParseDecimal(s string) (Magnitude, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return One, fmt.Errorf("magnitude: parse %q: %w", s, err)
	}
	return FromDecimal(d)
}

// FromDecimal converts d exactly: coefficient × 10^exponent.
func FromDecimal(d decimal.Decimal) (Magnitude, error) {
	if d.IsZero() {
		return One, ErrZeroMagnitude
	}
	coef := d.Coefficient()
	neg := coef.Sign() < 0
	coef.Abs(coef)
	if !coef.IsUint64() {
		return One, fmt.Errorf("%w: coefficient %s", ErrOverflow, coef)
	}
	m, err := Uint(coef.Uint64())
	if err != nil {
		return One, err
	}
	m = m.Mul(PowerOfTen(int(d.Exponent())))
	m.negative = neg
	return m, nil
}
