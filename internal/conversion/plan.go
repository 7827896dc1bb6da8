package conversion

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/san-kum/unitlab/internal/magnitude"
	"github.com/san-kum/unitlab/internal/unit"
)

// Class is the safety classification of a conversion.
type Class int

const (
	Exact Class = iota
	Truncating
	Floating
	Rejected
)

func (c Class) String() string {
	switch c {
	case Exact:
		return "exact"
	case Truncating:
		return "truncating"
	case Floating:
		return "floating"
	}
	return "rejected"
}

// Order is the evaluation order of value*num/den.
type Order int

const (
	MulFirst Order = iota
	DivFirst
)

func (o Order) String() string {
	if o == DivFirst {
		return "divide-first"
	}
	return "multiply-first"
}

// Plan is a precomputed conversion from one unit to another.
type Plan struct {
	From  unit.Unit
	To    unit.Unit
	Rep   Rep
	Class Class
	Ratio magnitude.Magnitude

	// Num and Den hold |Ratio| in lowest terms when it is rational and fits.
	Num uint64
	Den uint64

	Negative   bool
	Irrational bool
	Factor     float64
	Order      Order

	// Err explains a Rejected plan.
	Err error
}

// IsIdentity reports whether the conversion is a no-op.
func (p Plan) IsIdentity() bool { return p.Class != Rejected && p.Ratio.IsOne() }

// NeedsAcknowledgement reports whether the plan may drop information for
// values the policy cannot vet in advance.
func (p Plan) NeedsAcknowledgement() bool { return p.Class == Truncating }

// Check returns nil when the plan may run for every value in bound. With
// lossy set, truncating plans are accepted too.
func (p Plan) Check(lossy bool) error {
	switch {
	case p.Class == Rejected:
		return p.Err
	case p.NeedsAcknowledgement() && !lossy:
		return p.truncationError()
	}
	return nil
}

func (p Plan) truncationError() error {
	if p.Irrational {
		return fmt.Errorf("%w: %s -> %s has irrational factor %s", ErrTruncation, p.From, p.To, p.Ratio)
	}
	return fmt.Errorf("%w: %s -> %s needs division by %d", ErrTruncation, p.From, p.To, p.Den)
}

func (p Plan) String() string {
	if p.Class == Rejected {
		return fmt.Sprintf("%s -> %s [%s]: rejected: %v", p.From, p.To, p.Rep, p.Err)
	}
	return fmt.Sprintf("%s -> %s [%s]: %s, factor %s", p.From, p.To, p.Rep, p.Class, p.Ratio)
}

// Classify plans the conversion of values of rep from one unit to another.
func Classify(from, to unit.Unit, rep Rep) Plan {
	p := Plan{From: from, To: to, Rep: rep}
	ratio, err := unit.Ratio(from, to)
	if err != nil {
		return p.reject(err)
	}
	p.Ratio = ratio
	p.Negative = ratio.IsNegative()
	p.Irrational = !ratio.IsRational()
	p.Factor = ratio.Float64()

	if p.Negative && !rep.Signed {
		return p.reject(fmt.Errorf("%w: factor %s", ErrSignLoss, ratio))
	}

	var numErr, denErr error
	if !p.Irrational {
		p.Num, numErr = ratio.Numerator()
		p.Den, denErr = ratio.Denominator()
	}

	if rep.Kind == KindFloating {
		return p.classifyFloating(numErr, denErr)
	}
	return p.classifyIntegral(numErr, denErr)
}

func (p Plan) classifyIntegral(numErr, denErr error) Plan {
	rep := p.Rep
	bound := rep.EffectiveBound()

	if p.Irrational {
		if math.Abs(p.Factor)*float64(bound) > rep.MaxFloat() {
			return p.reject(p.overflow("factor %g", p.Factor))
		}
		p.Class = Truncating
		return p
	}
	if numErr != nil || denErr != nil || p.Num > rep.Max() || p.Den > rep.Max() {
		return p.reject(p.overflow("factor %s", p.Ratio))
	}

	if fitsProduct(bound, p.Num, rep.Max()) {
		p.Order = MulFirst
	} else {
		p.Order = DivFirst
		if !fitsProduct(bound/p.Den, p.Num, rep.Max()) {
			return p.reject(p.overflow("%d * %d/%d", bound, p.Num, p.Den))
		}
	}

	if p.Den == 1 {
		p.Class = Exact
		return p
	}
	p.Class = Truncating
	return p
}

func (p Plan) classifyFloating(numErr, denErr error) Plan {
	rep := p.Rep
	bound := float64(rep.EffectiveBound())
	f := math.Abs(p.Factor)
	if math.IsInf(f, 0) || f*bound > rep.MaxFloat() {
		return p.reject(p.overflow("factor %g", p.Factor))
	}
	if f == 0 || (rep.Bits == 32 && f < math.SmallestNonzeroFloat32) {
		return p.reject(fmt.Errorf("%w: factor %s underflows", ErrOverflow, p.Ratio))
	}

	p.Class = Floating
	if !p.Irrational && numErr == nil && denErr == nil && isPowerOfTwo(p.Num) && isPowerOfTwo(p.Den) {
		p.Class = Exact
	}
	return p
}

func (p Plan) reject(err error) Plan {
	p.Class = Rejected
	p.Err = err
	return p
}

func (p Plan) overflow(format string, args ...any) error {
	return fmt.Errorf("%w %s: %s (bound %d)", ErrOverflow, p.Rep.Name(), fmt.Sprintf(format, args...), p.Rep.EffectiveBound())
}

func fitsProduct(a, b, max uint64) bool {
	hi, lo := bits.Mul64(a, b)
	return hi == 0 && lo <= max
}

func isPowerOfTwo(n uint64) bool { return n != 0 && n&(n-1) == 0 }
