package conversion

import (
	"fmt"
	"math"
	"reflect"
	"sort"
)

// Kind separates integral from floating representations.
type Kind int

const (
	KindIntegral Kind = iota
	KindFloating
)

func (k Kind) String() string {
	if k == KindFloating {
		return "floating"
	}
	return "integral"
}

// DefaultBound is the largest magnitude every conversion must handle without
// overflow when the caller declares no bound.
const DefaultBound = 2147

// Rep describes a numeric representation.
type Rep struct {
	Kind     Kind
	Bits     int
	Signed   bool
	Mantissa int    // significand bits, floating only
	Bound    uint64 // largest absolute value to be converted; 0 means DefaultBound
}

var (
	Int8    = Rep{Kind: KindIntegral, Bits: 8, Signed: true}
	Int16   = Rep{Kind: KindIntegral, Bits: 16, Signed: true}
	Int32   = Rep{Kind: KindIntegral, Bits: 32, Signed: true}
	Int64   = Rep{Kind: KindIntegral, Bits: 64, Signed: true}
	Uint8   = Rep{Kind: KindIntegral, Bits: 8}
	Uint16  = Rep{Kind: KindIntegral, Bits: 16}
	Uint32  = Rep{Kind: KindIntegral, Bits: 32}
	Uint64  = Rep{Kind: KindIntegral, Bits: 64}
	Float32 = Rep{Kind: KindFloating, Bits: 32, Signed: true, Mantissa: 24}
	Float64 = Rep{Kind: KindFloating, Bits: 64, Signed: true, Mantissa: 53}
)

var repNames = map[string]Rep{
	"int8": Int8, "int16": Int16, "int32": Int32, "int64": Int64,
	"uint8": Uint8, "uint16": Uint16, "uint32": Uint32, "uint64": Uint64,
	"float32": Float32, "float64": Float64,
}

// ParseRep resolves a Go numeric type name.
func ParseRep(name string) (Rep, error) {
	r, ok := repNames[name]
	if !ok {
		return Rep{}, fmt.Errorf("%w: %q", ErrUnknownRep, name)
	}
	return r, nil
}

// RepNames lists the names accepted by ParseRep.
func RepNames() []string {
	names := make([]string, 0, len(repNames))
	for n := range repNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// WithBound returns r with an explicit value bound.
func (r Rep) WithBound(b uint64) Rep {
	r.Bound = b
	return r
}

// Max is the largest integral value, or math.MaxUint64 for floating reps.
func (r Rep) Max() uint64 {
	if r.Kind == KindFloating {
		return math.MaxUint64
	}
	if r.Signed {
		return 1<<(r.Bits-1) - 1
	}
	if r.Bits == 64 {
		return math.MaxUint64
	}
	return 1<<r.Bits - 1
}

// MaxFloat is the largest finite value of the representation.
func (r Rep) MaxFloat() float64 {
	switch {
	case r.Kind == KindIntegral:
		return float64(r.Max())
	case r.Bits == 32:
		return math.MaxFloat32
	}
	return math.MaxFloat64
}

// CheckFloat reports whether f, a result evaluated in float64, lands inside
// the representation once truncated toward zero.
func (r Rep) CheckFloat(f float64) error {
	if math.IsNaN(f) {
		return fmt.Errorf("%w %s: NaN", ErrOverflow, r.Name())
	}
	if r.Kind == KindFloating {
		if math.Abs(f) > r.MaxFloat() {
			return fmt.Errorf("%w %s: %g", ErrOverflow, r.Name(), f)
		}
		return nil
	}
	t := math.Trunc(f)
	lo, hi := 0.0, math.Ldexp(1, r.Bits)
	if r.Signed {
		lo, hi = -math.Ldexp(1, r.Bits-1), math.Ldexp(1, r.Bits-1)
	}
	if t < lo || t >= hi {
		return fmt.Errorf("%w %s: %g", ErrOverflow, r.Name(), f)
	}
	return nil
}

// EffectiveBound clamps the declared bound to the representation's range.
func (r Rep) EffectiveBound() uint64 {
	b := r.Bound
	if b == 0 {
		b = DefaultBound
	}
	if b > r.Max() {
		return r.Max()
	}
	return b
}

func (r Rep) Name() string {
	switch {
	case r.Kind == KindFloating:
		return fmt.Sprintf("float%d", r.Bits)
	case r.Signed:
		return fmt.Sprintf("int%d", r.Bits)
	}
	return fmt.Sprintf("uint%d", r.Bits)
}

func (r Rep) String() string {
	return fmt.Sprintf("%s(|v|<=%d)", r.Name(), r.EffectiveBound())
}

// Number is every Go numeric type a quantity can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// RepOf describes T.
func RepOf[T Number]() Rep {
	var zero T
	t := reflect.TypeOf(zero)
	bits := t.Bits()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		if bits == 32 {
			return Float32
		}
		return Float64
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Rep{Kind: KindIntegral, Bits: bits, Signed: true}
	}
	return Rep{Kind: KindIntegral, Bits: bits}
}
