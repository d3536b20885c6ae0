package tagged_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/tagged-values-go/tagged"
)

type balanceTag struct{}

type Balance = tagged.Value[balanceTag, int32]

func Test_Arithmetic_DelegatesToThePayload(t *testing.T) {
	three := tagged.New[quantityTag](uint8(3))
	four := tagged.New[quantityTag](uint8(4))

	assert.Equal(t, uint8(7), tagged.Add(three, four).Raw())
	assert.Equal(t, uint8(1), tagged.Sub(four, three).Raw())
	assert.Equal(t, uint8(12), tagged.Mul(three, four).Raw())
	assert.Equal(t, uint8(0), tagged.Zero[quantityTag, uint8]().Raw())
}

func Test_WrappingAdd_TruncatesPerThePayloadsWidth(t *testing.T) {
	max := tagged.New[quantityTag](uint8(255))
	one := tagged.New[quantityTag](uint8(1))

	assert.Equal(t, uint8(0), tagged.AddWrapping(max, one).Raw(),
		"max plus one must wrap to the minimum representable value")
	assert.Equal(t, uint8(0), tagged.Add(max, one).Raw(),
		"the payload's native overflow rule wraps, it never traps")
}

func Test_CheckedArithmetic_ReportsOverflowAsAbsence(t *testing.T) {
	tests := []struct {
		name     string
		run      func() (tagged.Value[quantityTag, uint8], bool)
		expected uint8
		ok       bool
	}{
		{
			name: "in_range_sum",
			run: func() (tagged.Value[quantityTag, uint8], bool) {
				return tagged.AddChecked(tagged.New[quantityTag](uint8(250)), tagged.New[quantityTag](uint8(5)))
			},
			expected: 255, ok: true,
		},
		{
			name: "overflowing_sum_is_absent",
			run: func() (tagged.Value[quantityTag, uint8], bool) {
				return tagged.AddChecked(tagged.New[quantityTag](uint8(255)), tagged.New[quantityTag](uint8(1)))
			},
			ok: false,
		},
		{
			name: "underflowing_difference_is_absent",
			run: func() (tagged.Value[quantityTag, uint8], bool) {
				return tagged.SubChecked(tagged.New[quantityTag](uint8(0)), tagged.New[quantityTag](uint8(1)))
			},
			ok: false,
		},
		{
			name: "overflowing_product_is_absent",
			run: func() (tagged.Value[quantityTag, uint8], bool) {
				return tagged.MulChecked(tagged.New[quantityTag](uint8(16)), tagged.New[quantityTag](uint8(16)))
			},
			ok: false,
		},
		{
			name: "in_range_product",
			run: func() (tagged.Value[quantityTag, uint8], bool) {
				return tagged.MulChecked(tagged.New[quantityTag](uint8(15)), tagged.New[quantityTag](uint8(17)))
			},
			expected: 255, ok: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := tt.run()

			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, result.Raw())
			}
		})
	}
}

func Test_CheckedArithmetic_SignedEdgeCases(t *testing.T) {
	minBalance := tagged.New[balanceTag](int32(math.MinInt32))
	minusOne := tagged.New[balanceTag](int32(-1))

	_, ok := tagged.MulChecked(minBalance, minusOne)
	assert.False(t, ok, "negating the minimum signed value overflows")

	_, ok = tagged.SubChecked(minBalance, tagged.New[balanceTag](int32(1)))
	assert.False(t, ok)

	sum, ok := tagged.AddChecked(minBalance, tagged.New[balanceTag](int32(1)))
	require.True(t, ok)
	assert.Equal(t, int32(math.MinInt32+1), sum.Raw())
}

func Test_Neg_Abs_Magnitude(t *testing.T) {
	debt := tagged.New[balanceTag](int32(-250))

	assert.Equal(t, int32(250), tagged.Neg(debt).Raw())
	assert.Equal(t, int32(250), tagged.Abs(debt).Raw())
	assert.Equal(t, int32(250), tagged.Magnitude(debt),
		"magnitude is the bare payload type, not re-wrapped")

	surplus := tagged.New[balanceTag](int32(40))
	assert.Equal(t, int32(40), tagged.Abs(surplus).Raw())
	assert.Equal(t, int32(-40), tagged.Neg(surplus).Raw())
}

func Test_Stride_UsesThePayloadsOwnArithmetic(t *testing.T) {
	start := tagged.New[balanceTag](int32(10))
	end := tagged.New[balanceTag](int32(-5))

	assert.Equal(t, int32(-15), tagged.Distance(start, end))
	assert.Equal(t, end, tagged.AdvancedBy(start, -15))
}

func Test_FromIntExact_FailsAsAbsenceWhenNotRepresentable(t *testing.T) {
	tests := []struct {
		name string
		run  func() bool
	}{
		{
			name: "fits_in_uint8",
			run: func() bool {
				quantity, ok := tagged.FromIntExact[quantityTag, uint8](200)
				return ok && quantity.Raw() == 200
			},
		},
		{
			name: "overflows_uint8",
			run: func() bool {
				_, ok := tagged.FromIntExact[quantityTag, uint8](256)
				return !ok
			},
		},
		{
			name: "negative_into_unsigned",
			run: func() bool {
				_, ok := tagged.FromIntExact[quantityTag, uint8](-1)
				return !ok
			},
		},
		{
			name: "exactly_representable_float",
			run: func() bool {
				price, ok := tagged.FromIntExact[priceTag, float64](1 << 53)
				return ok && price.Raw() == float64(1<<53)
			},
		},
		{
			name: "float_mantissa_rounds_the_value",
			run: func() bool {
				_, ok := tagged.FromIntExact[priceTag, float64](1<<53 + 1)
				return !ok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.run())
		})
	}
}

func Test_FromFloatExact_FailsAsAbsenceWhenNotRepresentable(t *testing.T) {
	tests := []struct {
		name string
		run  func() bool
	}{
		{
			name: "whole_float_fits_in_uint8",
			run: func() bool {
				quantity, ok := tagged.FromFloatExact[quantityTag, uint8](200.0)
				return ok && quantity.Raw() == 200
			},
		},
		{
			name: "fractional_float_into_integer",
			run: func() bool {
				_, ok := tagged.FromFloatExact[quantityTag, uint8](1.5)
				return !ok
			},
		},
		{
			name: "whole_float_overflows_uint8",
			run: func() bool {
				_, ok := tagged.FromFloatExact[quantityTag, uint8](256.0)
				return !ok
			},
		},
		{
			name: "negative_float_into_unsigned",
			run: func() bool {
				_, ok := tagged.FromFloatExact[quantityTag, uint8](-1.0)
				return !ok
			},
		},
		{
			name: "minimum_signed_value_is_exact",
			run: func() bool {
				balance, ok := tagged.FromFloatExact[balanceTag, int32](float64(math.MinInt32))
				return ok && balance.Raw() == math.MinInt32
			},
		},
		{
			name: "float64_into_float64_is_identity",
			run: func() bool {
				price, ok := tagged.FromFloatExact[priceTag, float64](3.25)
				return ok && price.Raw() == 3.25
			},
		},
		{
			name: "float32_mantissa_rounds_the_value",
			run: func() bool {
				_, ok := tagged.FromFloatExact[priceTag, float32](0.1)
				return !ok
			},
		},
		{
			name: "infinity_into_integer",
			run: func() bool {
				_, ok := tagged.FromFloatExact[balanceTag, int32](math.Inf(1))
				return !ok
			},
		},
		{
			name: "nan_is_never_exact",
			run: func() bool {
				_, ok := tagged.FromFloatExact[priceTag, float64](math.NaN())
				return !ok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.run())
		})
	}
}

func Test_RandomIn_DelegatesToTheSourceOnUnwrappedBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	lo := tagged.New[quantityTag](uint8(10))
	hi := tagged.New[quantityTag](uint8(20))

	for range 1000 {
		picked := tagged.RandomIn(rng, lo, hi)
		require.GreaterOrEqual(t, picked.Raw(), uint8(10))
		require.Less(t, picked.Raw(), uint8(20))
	}
}

func Test_RandomInClosed_IncludesBothBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	lo := tagged.New[quantityTag](uint8(0))
	hi := tagged.New[quantityTag](uint8(1))

	seen := map[uint8]bool{}
	for range 200 {
		seen[tagged.RandomInClosed(rng, lo, hi).Raw()] = true
	}

	assert.True(t, seen[0] && seen[1], "both bounds must be reachable")
}

func Test_RandomInClosed_SignedBoundsSpanningZero(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	lo := tagged.New[balanceTag](int32(-3))
	hi := tagged.New[balanceTag](int32(3))

	for range 1000 {
		picked := tagged.RandomInClosed(rng, lo, hi)
		require.GreaterOrEqual(t, picked.Raw(), int32(-3))
		require.LessOrEqual(t, picked.Raw(), int32(3))
	}
}

func Test_RandomIn_EmptyRangePanicsLikeTheSource(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	bound := tagged.New[quantityTag](uint8(5))

	assert.Panics(t, func() {
		tagged.RandomIn(rng, bound, bound)
	})
}

func Test_RandomIn_InvertedBoundsPanic(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	lo := tagged.New[balanceTag](int32(10))
	hi := tagged.New[balanceTag](int32(-10))

	assert.Panics(t, func() {
		tagged.RandomIn(rng, lo, hi)
	})
	assert.Panics(t, func() {
		tagged.RandomInClosed(rng, lo, hi)
	})
}
