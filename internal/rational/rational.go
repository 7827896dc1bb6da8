// Package rational provides a small exact rational number used for exponents
// of magnitudes and dimensions and for affine origins.
//
// Values are always normalized: lowest terms, positive denominator. The zero
// value is 0/1 once normalized; use [New] to build values.
package rational

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

var (
	ErrZeroDenominator = errors.New("rational: zero denominator")
	ErrSyntax          = errors.New("rational: invalid syntax")

	// ErrOverflow indicates a result whose numerator or denominator leaves int64.
	ErrOverflow = errors.New("rational: int64 overflow")
)

// Rational is num/den in lowest terms with den > 0.
type Rational struct {
	num int64
	den int64
}

var (
	Zero = Rational{0, 1}
	One  = Rational{1, 1}
)

// New returns num/den normalized. It panics when den is zero, and with
// ErrOverflow when either part is math.MinInt64.
func New(num, den int64) Rational {
	if den == 0 {
		panic(ErrZeroDenominator)
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		panic(ErrOverflow)
	}
	if num == 0 {
		return Zero
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	return Rational{num: num / g, den: den / g}
}

// Int returns n/1.
func Int(n int64) Rational { return New(n, 1) }

// Parse reads "p", "-p" or "p/q".
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	numStr, denStr, hasDen := strings.Cut(s, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	den := int64(1)
	if hasDen {
		den, err = strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
		if err != nil {
			return Zero, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		if den == 0 {
			return Zero, ErrZeroDenominator
		}
	}
	return build(num, den)
}

func (r Rational) Num() int64 { return r.num }

func (r Rational) Den() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

func (r Rational) IsZero() bool    { return r.num == 0 }
func (r Rational) IsInteger() bool { return r.Den() == 1 }
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}
	return 0
}

// Add, Sub, Mul and Div panic with ErrOverflow when the exact result does
// not fit; the Checked variants return the error instead.
func (r Rational) Add(o Rational) Rational { return must(r.CheckedAdd(o)) }
func (r Rational) Sub(o Rational) Rational { return must(r.CheckedSub(o)) }
func (r Rational) Mul(o Rational) Rational { return must(r.CheckedMul(o)) }

// Div also panics when o is zero.
func (r Rational) Div(o Rational) Rational {
	if o.num == 0 {
		panic(ErrZeroDenominator)
	}
	return r.Mul(New(o.Den(), o.num))
}

func (r Rational) CheckedAdd(o Rational) (Rational, error) {
	g := gcd(r.Den(), o.Den())
	a, err := mul64(r.num, o.Den()/g)
	if err != nil {
		return Zero, err
	}
	b, err := mul64(o.num, r.Den()/g)
	if err != nil {
		return Zero, err
	}
	num, err := add64(a, b)
	if err != nil {
		return Zero, err
	}
	den, err := mul64(r.Den(), o.Den()/g)
	if err != nil {
		return Zero, err
	}
	return build(num, den)
}

func (r Rational) CheckedSub(o Rational) (Rational, error) {
	return r.CheckedAdd(o.Neg())
}

func (r Rational) CheckedMul(o Rational) (Rational, error) {
	if r.num == 0 || o.num == 0 {
		return Zero, nil
	}
	g1 := gcd(abs(r.num), o.Den())
	g2 := gcd(abs(o.num), r.Den())
	num, err := mul64(r.num/g1, o.num/g2)
	if err != nil {
		return Zero, err
	}
	den, err := mul64(r.Den()/g2, o.Den()/g1)
	if err != nil {
		return Zero, err
	}
	return build(num, den)
}

func (r Rational) Neg() Rational { return Rational{num: -r.num, den: r.Den()} }

// Cmp returns -1, 0 or +1.
func (r Rational) Cmp(o Rational) int {
	if rs, ss := r.Sign(), o.Sign(); rs != ss || rs == 0 {
		return cmpInt(rs, ss)
	}
	ahi, alo := bits.Mul64(uabs(r.num), uint64(o.Den()))
	bhi, blo := bits.Mul64(uabs(o.num), uint64(r.Den()))
	c := cmpInt(ahi, bhi)
	if c == 0 {
		c = cmpInt(alo, blo)
	}
	return c * r.Sign()
}

func cmpInt[T int | uint64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (r Rational) Equal(o Rational) bool {
	return r.num == o.num && r.Den() == o.Den()
}

func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

func (r Rational) String() string {
	if r.IsInteger() {
		return strconv.FormatInt(r.num, 10)
	}
	return fmt.Sprintf("%d/%d", r.num, r.Den())
}

// Min returns the smaller of a and b.
func Min(a, b Rational) Rational {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func build(num, den int64) (Rational, error) {
	if num == math.MinInt64 || den == math.MinInt64 {
		return Zero, ErrOverflow
	}
	return New(num, den), nil
}

func must(r Rational, err error) Rational {
	if err != nil {
		panic(err)
	}
	return r
}

func mul64(a, b int64) (int64, error) {
	hi, lo := bits.Mul64(uabs(a), uabs(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	if (a < 0) != (b < 0) {
		return -int64(lo), nil
	}
	return int64(lo), nil
}

func add64(a, b int64) (int64, error) {
	c := a + b
	if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return c, nil
}

func uabs(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
