package scalar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decmath/coerce"
	"github.com/katalvlaran/decmath/num"
	"github.com/katalvlaran/decmath/scalar"
)

// TestPower covers positive, zero and negative exponents.
func TestPower(t *testing.T) {
	ctx := num.DefaultContext()

	cases := []struct {
		name string
		base num.Value
		exp  int64
		want string
	}{
		{"Square", num.Int(2), 10, "1024"},
		{"ZeroExp", num.Int(9), 0, "1"},
		{"NegativeBase", num.Int(-3), 3, "-27"},
		{"Reciprocal", num.Int(2), -2, "0.25"},
		{"FractionalBase", num.DecString("1.5"), 2, "2.25"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scalar.Power(ctx, tc.base, tc.exp)
			require.NoError(t, err)
			assertClose(t, ctx, got, tc.want, "1e-40")
		})
	}
}

// TestPower_ZeroToNegative routes through the division choke point.
func TestPower_ZeroToNegative(t *testing.T) {
	_, err := scalar.Power(num.DefaultContext(), num.Int(0), -1)
	assert.ErrorIs(t, err, num.ErrDivideByZero)
}

// TestFact checks base cases, the recurrence and the domain guard.
func TestFact(t *testing.T) {
	zero, err := scalar.Fact(0, coerce.AsInt())
	require.NoError(t, err)
	assert.Equal(t, num.Int(1), zero)

	five, err := scalar.Fact(5, coerce.AsInt())
	require.NoError(t, err)
	assert.Equal(t, num.Int(120), five)

	// fact(n) == n · fact(n−1)
	ctx := num.DefaultContext()
	for n := int64(1); n <= 25; n++ {
		cur, err := scalar.Fact(n)
		require.NoError(t, err)
		prev, err := scalar.Fact(n - 1)
		require.NoError(t, err)

		dPrev, err := ctx.ToDecimal(prev)
		require.NoError(t, err)
		scaled, err := ctx.Mul(decT(t, "1").SetInt64(n), dPrev)
		require.NoError(t, err)
		dCur, err := ctx.ToDecimal(cur)
		require.NoError(t, err)
		assert.Zero(t, dCur.Cmp(scaled), "fact(%d) must equal %d·fact(%d)", n, n, n-1)
	}

	_, err = scalar.Fact(-1)
	assert.ErrorIs(t, err, num.ErrDomain)
}

// TestFact_Exact verifies no precision loss past the context digit budget:
// 30! has 33 digits and must come back exact.
func TestFact_Exact(t *testing.T) {
	got, err := scalar.Fact(30)
	require.NoError(t, err)
	assert.Equal(t, "265252859812191058636308480000000", got.String())
}

// TestFibonacci checks the opening terms and the empty cases.
func TestFibonacci(t *testing.T) {
	ctx := num.DefaultContext()

	series, err := scalar.Fibonacci(ctx, 10, coerce.AsInt())
	require.NoError(t, err)

	want := []num.Value{
		num.Int(0), num.Int(1), num.Int(1), num.Int(2), num.Int(3),
		num.Int(5), num.Int(8), num.Int(13), num.Int(21), num.Int(34),
	}
	assert.Equal(t, want, series)

	empty, err := scalar.Fibonacci(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	neg, err := scalar.Fibonacci(ctx, -3)
	require.NoError(t, err)
	assert.Empty(t, neg)
}
