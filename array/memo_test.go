package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decmath/num"
)

// TestMemo_PopulateAndInvalidate peeks at the memo map directly: reductions
// land in it keyed by name, and any Set drops the whole map.
func TestMemo_PopulateAndInvalidate(t *testing.T) {
	a, err := New1(num.DefaultContext(), []any{1, 2, 3})
	require.NoError(t, err)
	assert.Nil(t, a.memo, "fresh array carries no memo")

	_, err = a.Sum()
	require.NoError(t, err)
	assert.Contains(t, a.memo, "Sum")

	_, err = a.Mean()
	require.NoError(t, err)
	assert.Contains(t, a.memo, "Mean")
	assert.Len(t, a.memo, 2)

	require.NoError(t, a.Set(0, 9))
	assert.Nil(t, a.memo, "Set must drop every cached reduction")
}

// TestMemo_DotKeyedByOperand: dot products against different operands
// coexist in the memo because the key carries the operand digest.
func TestMemo_DotKeyedByOperand(t *testing.T) {
	ctx := num.DefaultContext()
	a, err := New1(ctx, []any{1, 2})
	require.NoError(t, err)
	b, err := New1(ctx, []any{3, 4})
	require.NoError(t, err)
	c, err := New1(ctx, []any{5, 6})
	require.NoError(t, err)

	db, err := a.Dot(b)
	require.NoError(t, err)
	assert.Equal(t, "11", db.String())

	dc, err := a.Dot(c)
	require.NoError(t, err)
	assert.Equal(t, "17", dc.String())

	assert.Len(t, a.memo, 2, "distinct operands must occupy distinct keys")
}

// TestMemo_FailedReductionNotCached: an error result must not be memoized,
// so a later valid call recomputes.
func TestMemo_FailedReductionNotCached(t *testing.T) {
	a, err := New1(num.DefaultContext(), []any{})
	require.NoError(t, err)

	_, err = a.Mean()
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.NotContains(t, a.memo, "Mean")
}
