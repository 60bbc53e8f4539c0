package scalar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decmath/num"
	"github.com/katalvlaran/decmath/scalar"
)

// TestLn pins known logarithms within the series cutoff tolerance.
func TestLn(t *testing.T) {
	ctx := num.DefaultContext()

	cases := []struct {
		name string
		in   num.Value
		want string
		tol  string
	}{
		{"One", num.Int(1), "0", "1e-38"},
		{"E", scalar.E(), "1", "1e-28"},
		{"Ten", num.Int(10), "2.302585092994045684017991454684364207601", "1e-30"},
		{"Half", num.DecString("0.5"), "-0.6931471805599453094172321214581765680755", "1e-30"},
		{"TwoThousand", num.Int(2000), "7.6009024595420823614712064855112691908788", "1e-30"},
		{"HundredThousand", num.Int(100000), "11.512925464970228420089957273421821038006", "1e-30"},
		{"TenThousandth", num.DecString("0.0001"), "-9.2103403719761827360719658187374568304044", "1e-30"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scalar.Ln(ctx, tc.in)
			require.NoError(t, err)
			assertClose(t, ctx, got, tc.want, tc.tol)
		})
	}
}

// TestLn_Domain rejects zero and negative inputs.
func TestLn_Domain(t *testing.T) {
	ctx := num.DefaultContext()

	_, err := scalar.Ln(ctx, num.Int(0))
	assert.ErrorIs(t, err, num.ErrDomain)

	_, err = scalar.Ln(ctx, num.Float(-2.5))
	assert.ErrorIs(t, err, num.ErrDomain)
}

// TestLog covers the change-of-base identities.
func TestLog(t *testing.T) {
	ctx := num.DefaultContext()

	// log_x(x) == 1 for any valid base.
	for _, x := range []string{"2", "10", "0.5", "7.25"} {
		got, err := scalar.Log(ctx, num.DecString(x), num.DecString(x))
		require.NoError(t, err)
		assertClose(t, ctx, got, "1", "1e-30")
	}

	got, err := scalar.Log(ctx, num.Int(8), num.Int(2))
	require.NoError(t, err)
	assertClose(t, ctx, got, "3", "1e-30")

	got, err = scalar.Log(ctx, num.Int(1000), num.Int(10))
	require.NoError(t, err)
	assertClose(t, ctx, got, "3", "1e-30")

	// Large and tiny operands converge like everything else.
	got, err = scalar.Log(ctx, num.DecString("1e6"), num.Int(10))
	require.NoError(t, err)
	assertClose(t, ctx, got, "6", "1e-30")

	got, err = scalar.Log(ctx, num.DecString("1e-9"), num.Int(10))
	require.NoError(t, err)
	assertClose(t, ctx, got, "-9", "1e-30")
}

// TestLog_Errors: base 1 divides by ln(1) == 0; non-positive operands are
// domain errors.
func TestLog_Errors(t *testing.T) {
	ctx := num.DefaultContext()

	_, err := scalar.Log(ctx, num.Int(5), num.Int(1))
	assert.ErrorIs(t, err, num.ErrDivideByZero)

	_, err = scalar.Log(ctx, num.Int(-5), num.Int(2))
	assert.ErrorIs(t, err, num.ErrDomain)

	_, err = scalar.Log(ctx, num.Int(5), num.Int(0))
	assert.ErrorIs(t, err, num.ErrDomain)
}
