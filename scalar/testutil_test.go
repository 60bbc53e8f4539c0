package scalar_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decmath/num"
)

// decT parses a decimal literal for test fixtures.
func decT(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)

	return d
}

// assertClose fails unless |got − want| ≤ tol, with all three given as
// decimal literals evaluated at the context precision. Decimal results are
// never compared with assert.Equal: equal magnitudes may carry different
// exponent/coefficient pairs.
func assertClose(t *testing.T, ctx *num.Context, got num.Value, want, tol string) {
	t.Helper()
	g, err := ctx.ToDecimal(got)
	require.NoError(t, err)
	diff, err := ctx.Sub(g, decT(t, want))
	require.NoError(t, err)
	abs := new(apd.Decimal).Abs(diff)
	require.LessOrEqual(t, abs.Cmp(decT(t, tol)), 0,
		"got %s, want %s ± %s (off by %s)", g, want, tol, abs)
}
