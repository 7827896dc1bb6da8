package magnitude

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/unitlab/internal/rational"
)

// Magnitude is an exact nonzero real number: sign × Π base^exp.
type Magnitude struct {
	factors  []Factor
	negative bool
}

// One is the multiplicative identity. It equals the zero value.
var One = Magnitude{}

// Int returns the magnitude of n.
func Int(n int64) (Magnitude, error) {
	if n == 0 {
		return One, ErrZeroMagnitude
	}
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-(n + 1)) + 1
	}
	m, err := Uint(u)
	if err != nil {
		return One, err
	}
	m.negative = neg
	return m, nil
}

// Uint returns the magnitude of n.
func Uint(n uint64) (Magnitude, error) {
	fs, err := factorize(n)
	if err != nil {
		return One, err
	}
	return Magnitude{factors: fs}, nil
}

// Ratio returns num/den.
func Ratio(num, den int64) (Magnitude, error) {
	if num == 0 || den == 0 {
		return One, ErrZeroMagnitude
	}
	n, err := Int(num)
	if err != nil {
		return One, err
	}
	d, err := Int(den)
	if err != nil {
		return One, err
	}
	return n.Div(d), nil
}

// MustInt is Int for package-level definitions; it panics on error.
func MustInt(n int64) Magnitude {
	m, err := Int(n)
	if err != nil {
		panic(err)
	}
	return m
}

// MustRatio is Ratio for package-level definitions; it panics on error.
func MustRatio(num, den int64) Magnitude {
	m, err := Ratio(num, den)
	if err != nil {
		panic(err)
	}
	return m
}

// Pi returns π.
func Pi() Magnitude {
	return Magnitude{factors: []Factor{{Base: PiBase, Exp: rational.One}}}
}

// PowerOfTen returns 10^n.
func PowerOfTen(n int) Magnitude {
	if n == 0 {
		return One
	}
	e := rational.Int(int64(n))
	return Magnitude{factors: []Factor{{Base: Prime(2), Exp: e}, {Base: Prime(5), Exp: e}}}
}

// FromFactors builds a magnitude from explicit factors, checking that every
// non-transcendental base is prime. Repeated bases are combined.
func FromFactors(negative bool, fs ...Factor) (Magnitude, error) {
	m := Magnitude{negative: negative}
	for _, f := range fs {
		if f.Base.IsPrime() && !isPrime(f.Base.prime) {
			return One, fmt.Errorf("%w: %d", ErrNotPrime, f.Base.prime)
		}
		if f.Base.IsTranscendental() && !f.Exp.IsInteger() {
			return One, ErrIrrationalPower
		}
		m.factors = merge(m.factors, []Factor{f}, rational.One)
	}
	return m, nil
}

// Product multiplies all of ms.
func Product(ms ...Magnitude) Magnitude {
	out := One
	for _, m := range ms {
		out = out.Mul(m)
	}
	return out
}

func (m Magnitude) Mul(o Magnitude) Magnitude {
	return Magnitude{
		factors:  merge(m.factors, o.factors, rational.One),
		negative: m.negative != o.negative,
	}
}

func (m Magnitude) Div(o Magnitude) Magnitude {
	return Magnitude{
		factors:  merge(m.factors, o.factors, rational.Int(-1)),
		negative: m.negative != o.negative,
	}
}

// Inverse returns 1/m.
func (m Magnitude) Inverse() Magnitude { return One.Div(m) }

// Pow raises m to the rational power p.
func (m Magnitude) Pow(p rational.Rational) (Magnitude, error) {
	if p.IsZero() {
		return One, nil
	}
	out := Magnitude{factors: make([]Factor, 0, len(m.factors))}
	for _, f := range m.factors {
		e, err := f.Exp.CheckedMul(p)
		if err != nil {
			return One, fmt.Errorf("%w: %s^(%s): %w", ErrOverflow, f.Base, p, err)
		}
		if f.Base.IsTranscendental() && !e.IsInteger() {
			return One, fmt.Errorf("%w: %s^(%s)", ErrIrrationalPower, f.Base, e)
		}
		out.factors = append(out.factors, Factor{Base: f.Base, Exp: e})
	}
	if m.negative {
		if p.Den()%2 == 0 {
			return One, ErrNegativeRoot
		}
		out.negative = p.Num()%2 != 0
	}
	return out, nil
}

// Root returns the n-th root of m.
func (m Magnitude) Root(n int64) (Magnitude, error) {
	if n == 0 {
		return One, ErrZeroRoot
	}
	return m.Pow(rational.New(1, n))
}

func (m Magnitude) Abs() Magnitude {
	return Magnitude{factors: m.factors}
}

func (m Magnitude) IsNegative() bool { return m.negative }
func (m Magnitude) IsOne() bool      { return !m.negative && len(m.factors) == 0 }

// Factors returns a copy of the canonical factor list.
func (m Magnitude) Factors() []Factor {
	out := make([]Factor, len(m.factors))
	copy(out, m.factors)
	return out
}

// Exponent returns the exponent of b, zero when absent.
func (m Magnitude) Exponent(b Base) rational.Rational {
	for _, f := range m.factors {
		if f.Base == b {
			return f.Exp
		}
	}
	return rational.Zero
}

// HasTranscendental reports whether any transcendental base remains.
func (m Magnitude) HasTranscendental() bool {
	for _, f := range m.factors {
		if f.Base.IsTranscendental() {
			return true
		}
	}
	return false
}

// IsRational reports whether m is a ratio of integers.
func (m Magnitude) IsRational() bool {
	for _, f := range m.factors {
		if f.Base.IsTranscendental() || !f.Exp.IsInteger() {
			return false
		}
	}
	return true
}

// IsInteger reports whether m is a (possibly negative) integer.
func (m Magnitude) IsInteger() bool {
	if !m.IsRational() {
		return false
	}
	for _, f := range m.factors {
		if f.Exp.Sign() < 0 {
			return false
		}
	}
	return true
}

// Equal is exact symbolic equality.
func (m Magnitude) Equal(o Magnitude) bool {
	if m.negative != o.negative || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if m.factors[i].Base != o.factors[i].Base || !m.factors[i].Exp.Equal(o.factors[i].Exp) {
			return false
		}
	}
	return true
}

// Compare orders magnitudes by numeric value and returns -1, 0 or +1.
func Compare(a, b Magnitude) int {
	if a.negative != b.negative {
		if a.negative {
			return -1
		}
		return 1
	}
	if a.Equal(b) {
		return 0
	}
	c := compareAbs(a.Abs(), b.Abs())
	if a.negative {
		return -c
	}
	return c
}

// Less reports whether a < b by value.
func Less(a, b Magnitude) bool { return Compare(a, b) < 0 }

func compareAbs(a, b Magnitude) int {
	r := a.Div(b)
	if r.IsRational() {
		num, errN := r.Numerator()
		den, errD := r.Denominator()
		if errN == nil && errD == nil {
			switch {
			case num > den:
				return 1
			case num < den:
				return -1
			}
			return 0
		}
	}
	if logValue(r) > 0 {
		return 1
	}
	return -1
}

func logValue(m Magnitude) float64 {
	var sum float64
	for _, f := range m.factors {
		sum += f.Exp.Float64() * math.Log(f.Base.float64())
	}
	return sum
}

// String renders the canonical form, e.g. "-2^3 * 5^-2 * pi".
func (m Magnitude) String() string {
	if len(m.factors) == 0 {
		if m.negative {
			return "-1"
		}
		return "1"
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		parts[i] = f.String()
	}
	s := strings.Join(parts, " * ")
	if m.negative {
		return "-" + s
	}
	return s
}

// Key is a canonical identity string suitable for map keys.
func (m Magnitude) Key() string { return m.String() }

// merge combines two canonical factor lists, scaling b's exponents by k. It
// panics with rational.ErrOverflow when an exponent leaves int64.
func merge(a, b []Factor, k rational.Rational) []Factor {
	out := make([]Factor, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b) || (i < len(a) && a[i].Base.Less(b[j].Base)):
			out = append(out, a[i])
			i++
		case i >= len(a) || b[j].Base.Less(a[i].Base):
			out = append(out, Factor{Base: b[j].Base, Exp: b[j].Exp.Mul(k)})
			j++
		default:
			e := a[i].Exp.Add(b[j].Exp.Mul(k))
			if !e.IsZero() {
				out = append(out, Factor{Base: a[i].Base, Exp: e})
			}
			i++
			j++
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
