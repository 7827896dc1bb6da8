package magnitude

import (
	"fmt"
	"math/big"

	"github.com/san-kum/unitlab/internal/rational"
)

// FactorSearchLimit bounds trial division. Cofactors left after dividing out
// every prime up to the limit must themselves be prime.
const FactorSearchLimit = 1 << 16

func factorize(n uint64) ([]Factor, error) {
	if n == 0 {
		return nil, ErrZeroMagnitude
	}
	var out []Factor
	push := func(p uint64, e int64) {
		out = append(out, Factor{Base: Prime(p), Exp: rational.Int(e)})
	}

	for p := uint64(2); p <= FactorSearchLimit && p*p <= n; {
		var e int64
		for n%p == 0 {
			n /= p
			e++
		}
		if e > 0 {
			push(p, e)
		}
		if p == 2 {
			p = 3
		} else {
			p += 2
		}
	}
	if n > 1 {
		if !isPrime(n) {
			return nil, fmt.Errorf("%w: cofactor %d", ErrFactorLimit, n)
		}
		push(n, 1)
	}
	return out, nil
}

// isPrime is exact for every uint64 (ProbablyPrime(0) is Baillie-PSW, which has
// no known pseudoprimes below 2^64).
func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	return new(big.Int).SetUint64(n).ProbablyPrime(0)
}
