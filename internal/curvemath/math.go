// Package curvemath evaluates the bonding curve and its inverse in integer
// fixed-point arithmetic.
//
// The forward function maps the value collected by a pool to the number of
// tokens sold, f(v) = a*sqrt(v); the inverse maps tokens sold back to value,
// g(s) = s^2/a^2. Both are evaluated with a fixed decimal precision of
// Scale and with math/big intermediates, so results are bit-reproducible and
// can never wrap around.
package curvemath

import (
	"fmt"
	"math/big"
	"sync"
)

// Scale is the fixed decimal precision of the curve (9 digits).
const Scale = 1_000_000_000

var (
	one        = big.NewInt(1)
	bigScale   = big.NewInt(Scale)
	bigScaleSq = new(big.Int).Mul(bigScale, bigScale)

	defaultMath = newMathService()
)

type mathTmp struct {
	low  *big.Int
	high *big.Int
	mid  *big.Int
	sq   *big.Int
}

type mathService struct {
	pool *sync.Pool
}

func newMathService() *mathService {
	return &mathService{
		pool: &sync.Pool{
			New: func() any {
				return &mathTmp{
					low:  new(big.Int),
					high: new(big.Int),
					mid:  new(big.Int),
					sq:   new(big.Int),
				}
			},
		},
	}
}

// sqrtInto binary-searches [0, n] for the smallest candidate whose square
// exceeds n and steps back once, which yields the floor.
func (m *mathService) sqrtInto(out, n *big.Int) *big.Int {
	switch {
	case n.Sign() < 0:
		panic(fmt.Sprintf("curvemath: square root of negative number %s", n))
	case n.Sign() == 0:
		return out.SetInt64(0)
	case n.Cmp(one) == 0:
		return out.SetInt64(1)
	}

	t := m.pool.Get().(*mathTmp)
	defer m.pool.Put(t)

	t.low.SetInt64(0)
	t.high.Set(n)
	for t.low.Cmp(t.high) < 0 {
		t.mid.Add(t.low, t.high)
		t.mid.Rsh(t.mid, 1)
		t.sq.Mul(t.mid, t.mid)

		switch t.sq.Cmp(n) {
		case -1:
			t.low.Add(t.mid, one)
		case 1:
			t.high.Set(t.mid)
		default:
			return out.Set(t.mid)
		}
	}

	return out.Sub(t.low, one)
}

// IntegerSqrtInto writes floor(sqrt(n)) into out and returns it.
// out may alias n. Panics if n is negative.
func IntegerSqrtInto(out, n *big.Int) *big.Int {
	return defaultMath.sqrtInto(out, n)
}

// IntegerSqrt returns floor(sqrt(n)) as a newly allocated integer.
// Panics if n is negative.
func IntegerSqrt(n *big.Int) *big.Int {
	return defaultMath.sqrtInto(new(big.Int), n)
}

// CumulativeTokens returns the number of tokens sold once the pool has
// collected reserveValue: floor(a * isqrt(reserveValue * Scale^2) / Scale).
func CumulativeTokens(reserveValue *big.Int, a uint64) *big.Int {
	if reserveValue.Sign() == 0 {
		return new(big.Int)
	}

	out := new(big.Int).Mul(reserveValue, bigScaleSq)
	IntegerSqrtInto(out, out)
	out.Mul(out, new(big.Int).SetUint64(a))
	return out.Quo(out, bigScale)
}

// CumulativeValue returns the value collected once supply tokens have been
// sold: (supply^2 * Scale / a^2) / Scale. The intermediate Scale keeps an
// extra nine digits through the first truncating division.
// a must be non-zero.
func CumulativeValue(supply *big.Int, a uint64) *big.Int {
	if supply.Sign() == 0 {
		return new(big.Int)
	}

	out := new(big.Int).Mul(supply, supply)
	out.Mul(out, bigScale)

	aSq := new(big.Int).SetUint64(a)
	aSq.Mul(aSq, aSq)

	out.Quo(out, aSq)
	return out.Quo(out, bigScale)
}

// TokensForValue quotes the tokens received for valueIn at the given
// circulating supply: the supply is converted to its reserve value through
// the inverse curve, advanced by valueIn, and the difference of cumulative
// tokens before and after is returned.
func TokensForValue(valueIn, circulating, a uint64) *big.Int {
	reserve := CumulativeValue(new(big.Int).SetUint64(circulating), a)
	before := CumulativeTokens(reserve, a)

	reserve.Add(reserve, new(big.Int).SetUint64(valueIn))
	after := CumulativeTokens(reserve, a)

	return after.Sub(after, before)
}

// ValueForTokens quotes the value recovered for removing tokensIn from
// circulation. The caller must guarantee tokensIn <= circulating; violating
// it panics.
func ValueForTokens(tokensIn, circulating, a uint64) *big.Int {
	if tokensIn > circulating {
		panic(fmt.Sprintf("curvemath: tokens in %d exceed circulating supply %d", tokensIn, circulating))
	}

	before := CumulativeValue(new(big.Int).SetUint64(circulating), a)
	after := CumulativeValue(new(big.Int).SetUint64(circulating-tokensIn), a)

	return before.Sub(before, after)
}

// CostOfTokens quotes the value required to buy exactly tokensOut more
// tokens at the given circulating supply.
func CostOfTokens(tokensOut, circulating, a uint64) *big.Int {
	supply := new(big.Int).SetUint64(circulating)
	before := CumulativeValue(supply, a)

	supply.Add(supply, new(big.Int).SetUint64(tokensOut))
	after := CumulativeValue(supply, a)

	return after.Sub(after, before)
}

// MustUint64 narrows x to uint64 and panics when it does not fit. Curve
// results that overflow 64 bits are contract violations, never wrapped.
func MustUint64(x *big.Int) uint64 {
	if !x.IsUint64() {
		panic(fmt.Sprintf("curvemath: %s does not fit in uint64", x))
	}
	return x.Uint64()
}
