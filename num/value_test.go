package num_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/decmath/num"
)

// TestValue_Kind verifies that each constructor populates the matching arm.
func TestValue_Kind(t *testing.T) {
	assert.Equal(t, num.KindInt, num.Int(7).Kind())
	assert.Equal(t, num.KindFloat, num.Float(1.5).Kind())
	assert.Equal(t, num.KindDecimal, num.DecString("2.5").Kind())
	assert.Equal(t, num.KindRational, num.Rat(1, 3).Kind())
}

// TestValue_IsExactInt checks the exact-integer test across all four arms.
func TestValue_IsExactInt(t *testing.T) {
	cases := []struct {
		name string
		v    num.Value
		want bool
	}{
		{"Int", num.Int(-3), true},
		{"FloatWhole", num.Float(2.0), true},
		{"FloatFraction", num.Float(2.5), false},
		{"FloatNaN", num.Float(math.NaN()), false},
		{"FloatInf", num.Float(math.Inf(1)), false},
		{"DecimalWhole", num.DecString("2.000"), true},
		{"DecimalFraction", num.DecString("2.001"), false},
		{"DecimalHuge", num.DecString("1e30"), true},
		{"RationalWhole", num.Rat(6, 3), true},
		{"RationalFraction", num.Rat(1, 3), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.IsExactInt())
		})
	}
}

// TestValue_Int64 verifies exact-integer extraction and its overflow guard.
func TestValue_Int64(t *testing.T) {
	i, ok := num.Float(42.0).Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(42), i)

	_, ok = num.Float(0.5).Int64()
	assert.False(t, ok, "fractional float must not extract")

	i, ok = num.Rat(10, 2).Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(5), i)

	_, ok = num.DecString("1e40").Int64()
	assert.False(t, ok, "value beyond int64 must not extract")
}

// TestValue_String covers the rendering used in cache keys.
func TestValue_String(t *testing.T) {
	assert.Equal(t, "7", num.Int(7).String())
	assert.Equal(t, "1.5", num.Float(1.5).String())
	assert.Equal(t, "2.50", num.DecString("2.50").String())
	assert.Equal(t, "1/3", num.Rat(1, 3).String())
}

// TestRat_ZeroDenominatorPanics pins the programmer-error contract.
func TestRat_ZeroDenominatorPanics(t *testing.T) {
	assert.Panics(t, func() { num.Rat(1, 0) })
}

// TestRatFrom verifies the big.Rat passthrough constructor.
func TestRatFrom(t *testing.T) {
	v := num.RatFrom(big.NewRat(3, 4))
	assert.Equal(t, num.KindRational, v.Kind())
	assert.Equal(t, "3/4", v.String())
}
