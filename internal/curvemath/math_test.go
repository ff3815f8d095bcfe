package curvemath

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	thresholdSupply = 793_099_999_845_341
	thresholdValue  = 84_999_999_999
	curveA          = 2_720_310_557
)

func bi(s string) *big.Int {
	z, _ := new(big.Int).SetString(s, 10)
	return z
}

func u(x uint64) *big.Int {
	return new(big.Int).SetUint64(x)
}

func TestIntegerSqrt_Known(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    string
		want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"2", "1"},
		{"3", "1"},
		{"4", "2"},
		{"15", "3"},
		{"16", "4"},
		{"17", "4"},
		{"99", "9"},
		{"100", "10"},
		{"1000000000000000000", "1000000000"},
		{"18446744073709551615", "4294967295"},
		{"340282366920938463463374607431768211455", "18446744073709551615"}, // 2^128-1
		{"340282366920938463463374607431768211456", "18446744073709551616"}, // 2^128
	}

	for _, tt := range tests {
		got := IntegerSqrt(bi(tt.n))
		require.Equal(t, tt.want, got.String(), "isqrt(%s)", tt.n)
	}
}

func TestIntegerSqrt_FloorProperty(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	check := func(n *big.Int) {
		r := IntegerSqrt(n)
		lo := new(big.Int).Mul(r, r)
		r1 := new(big.Int).Add(r, one)
		hi := new(big.Int).Mul(r1, r1)
		require.True(t, lo.Cmp(n) <= 0, "isqrt(%s)^2 > n", n)
		require.True(t, hi.Cmp(n) > 0, "(isqrt(%s)+1)^2 <= n", n)
	}

	for i := int64(0); i < 2000; i++ {
		check(big.NewInt(i))
	}
	for i := 0; i < 2000; i++ {
		n := new(big.Int).Rand(rng, bi("1000000000000000000000000000000000000000"))
		check(n)
		// perfect squares and their neighbours
		sq := new(big.Int).Mul(n, n)
		check(sq)
		check(new(big.Int).Add(sq, one))
		if sq.Sign() > 0 {
			check(new(big.Int).Sub(sq, one))
		}
	}
}

func TestIntegerSqrtInto_Aliasing(t *testing.T) {
	t.Parallel()

	n := big.NewInt(1_000_001)
	IntegerSqrtInto(n, n)
	require.Equal(t, int64(1000), n.Int64())
}

func TestIntegerSqrt_Negative(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { IntegerSqrt(big.NewInt(-1)) })
}

func TestCumulativeFunctions_Zero(t *testing.T) {
	t.Parallel()

	require.Zero(t, CumulativeTokens(new(big.Int), curveA).Sign())
	require.Zero(t, CumulativeValue(new(big.Int), curveA).Sign())
}

func TestCumulativeFunctions_Threshold(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(thresholdValue), CumulativeValue(u(thresholdSupply), curveA).Uint64())
	// the forward curve truncates below the threshold supply
	require.Equal(t, uint64(793_099_999_840_675), CumulativeTokens(u(thresholdValue), curveA).Uint64())
}

func TestCumulativeFunctions_Monotonic(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	coefficients := []uint64{1, 1000, curveA, 1 << 40}

	for _, a := range coefficients {
		prevTokens := new(big.Int)
		prevValue := new(big.Int)
		x := uint64(0)
		for i := 0; i < 500; i++ {
			x += uint64(rng.Int63n(1 << 40))

			tokens := CumulativeTokens(u(x), a)
			value := CumulativeValue(u(x), a)
			require.True(t, tokens.Cmp(prevTokens) >= 0, "CumulativeTokens decreased at %d (a=%d)", x, a)
			require.True(t, value.Cmp(prevValue) >= 0, "CumulativeValue decreased at %d (a=%d)", x, a)
			prevTokens, prevValue = tokens, value
		}
	}
}

func TestValueForTokens(t *testing.T) {
	t.Parallel()

	t.Run("sell whole threshold from full circulation", func(t *testing.T) {
		got := ValueForTokens(thresholdSupply, thresholdSupply, curveA)
		require.Equal(t, uint64(thresholdValue), got.Uint64())
	})

	t.Run("small sell near the origin", func(t *testing.T) {
		got := ValueForTokens(5_000_000_000, 5_000_000_000, curveA)
		require.Equal(t, uint64(3), got.Uint64())
	})

	t.Run("zero tokens", func(t *testing.T) {
		got := ValueForTokens(0, thresholdSupply, curveA)
		require.Zero(t, got.Sign())
	})

	t.Run("more than circulating panics", func(t *testing.T) {
		require.Panics(t, func() { ValueForTokens(thresholdSupply, 0, curveA) })
		require.Panics(t, func() { ValueForTokens(5_000_000_000, 0, curveA) })
	})
}

func TestCostOfTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		tokens      uint64
		circulating uint64
		want        uint64
	}{
		{"whole threshold from zero", thresholdSupply, 0, thresholdValue},
		{"mid-size buy from zero", 1_785_357_737_104, 0, 430_738},
		{"tiny buy from zero", 5_000_000_000, 0, 3},
		{"nothing", 0, 1_000_000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CostOfTokens(tt.tokens, tt.circulating, curveA)
			require.Equal(t, tt.want, got.Uint64())
		})
	}
}

func TestTokensForValue(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(86_023_773_031_210), TokensForValue(1_000_000_000, 0, curveA).Uint64())
	require.Equal(t, uint64(2_720_310_557), TokensForValue(1, 0, curveA).Uint64())
	require.Equal(t, uint64(thresholdSupply), TokensForValue(85_000_000_000, 0, curveA).Uint64())
	require.Zero(t, TokensForValue(0, 1_000_000, curveA).Sign())
}

func TestTokensForValue_RoundTripFromZero(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		value := uint64(rng.Int63n(84_000_000_000)) + 1
		tokens := MustUint64(TokensForValue(value, 0, curveA))

		back := ValueForTokens(tokens, tokens, curveA)
		require.True(t, back.Cmp(u(value)) <= 0, "round trip of %d returned %s", value, back)
	}
}

func TestMustUint64(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(12), MustUint64(big.NewInt(12)))
	require.Panics(t, func() { MustUint64(bi("18446744073709551616")) })
	require.Panics(t, func() { MustUint64(big.NewInt(-1)) })
}

func BenchmarkTokensForValue(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = TokensForValue(1_000_000_000, 86_023_773_031_210, curveA)
	}
}

func BenchmarkIntegerSqrtInto_NoAllocs(b *testing.B) {
	n := bi("84999999999000000000000000000")
	out := new(big.Int) // allocate once and reuse
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		IntegerSqrtInto(out, n)
	}
}
