package magnitude

import (
	"fmt"
	"math"
	"math/big"

	"github.com/san-kum/unitlab/internal/rational"
)

// Transcendental identifies a non-algebraic base.
type Transcendental uint8

const (
	notTranscendental Transcendental = iota
	TranscendentalPi
)

// Base is either a prime or a transcendental constant.
type Base struct {
	prime uint64
	irr   Transcendental
}

// PiBase is the base for π.
var PiBase = Base{irr: TranscendentalPi}

// Prime returns the base for p. It does not check primality; use FromFactors
// for checked construction.
func Prime(p uint64) Base { return Base{prime: p} }

func (b Base) IsPrime() bool          { return b.irr == notTranscendental }
func (b Base) IsTranscendental() bool { return b.irr != notTranscendental }

// Value returns the prime, or 0 for transcendental bases.
func (b Base) Value() uint64 { return b.prime }

// Less orders primes ascending, then transcendentals.
func (b Base) Less(o Base) bool {
	if b.irr != o.irr {
		return b.irr < o.irr
	}
	return b.prime < o.prime
}

func (b Base) String() string {
	if b.irr == TranscendentalPi {
		return "pi"
	}
	return fmt.Sprintf("%d", b.prime)
}

func (b Base) float64() float64 {
	if b.irr == TranscendentalPi {
		return math.Pi
	}
	return float64(b.prime)
}

const piDigits = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798214808651"

func (b Base) bigFloat(prec uint) *big.Float {
	if b.irr == TranscendentalPi {
		f, _, _ := big.ParseFloat(piDigits, 10, prec, big.ToNearestEven)
		return f
	}
	return new(big.Float).SetPrec(prec).SetUint64(b.prime)
}

// Factor is one base raised to a nonzero rational exponent.
type Factor struct {
	Base Base
	Exp  rational.Rational
}

func (f Factor) String() string {
	switch {
	case f.Exp.Equal(rational.One):
		return f.Base.String()
	case f.Exp.IsInteger():
		return fmt.Sprintf("%s^%s", f.Base, f.Exp)
	}
	return fmt.Sprintf("%s^(%s)", f.Base, f.Exp)
}
