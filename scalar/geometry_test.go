package scalar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decmath/coerce"
	"github.com/katalvlaran/decmath/num"
	"github.com/katalvlaran/decmath/scalar"
)

// TestCircleFormulas checks circumference and area against π fixtures.
func TestCircleFormulas(t *testing.T) {
	ctx := num.DefaultContext()

	circ, err := scalar.Circumference(ctx, num.Int(1))
	require.NoError(t, err)
	assertClose(t, ctx, circ, "6.2831853071795864769252867665590057683942", "1e-38")

	area, err := scalar.AreaCircle(ctx, num.Int(2))
	require.NoError(t, err)
	assertClose(t, ctx, area, "12.566370614359172953850573533118011536788", "1e-37")
}

// TestPolygonFormulas covers the straight-edge helpers in one table.
func TestPolygonFormulas(t *testing.T) {
	ctx := num.DefaultContext()

	cases := []struct {
		name string
		run  func() (num.Value, error)
		want num.Value
	}{
		{"AreaSquare", func() (num.Value, error) {
			return scalar.AreaSquare(ctx, num.Int(5), coerce.AsInt())
		}, num.Int(25)},
		{"AreaRectangle", func() (num.Value, error) {
			return scalar.AreaRectangle(ctx, num.Int(3), num.Int(7), coerce.AsInt())
		}, num.Int(21)},
		{"AreaTriangle", func() (num.Value, error) {
			return scalar.AreaTriangle(ctx, num.Int(10), num.Int(3), coerce.AsInt())
		}, num.Int(15)},
		{"PerimeterSquare", func() (num.Value, error) {
			return scalar.PerimeterSquare(ctx, num.Int(5), coerce.AsInt())
		}, num.Int(20)},
		{"PerimeterRectangle", func() (num.Value, error) {
			return scalar.PerimeterRectangle(ctx, num.Int(3), num.Int(7), coerce.AsInt())
		}, num.Int(20)},
		{"CubeVolume", func() (num.Value, error) {
			return scalar.CubeVolume(ctx, num.Int(3), coerce.AsInt())
		}, num.Int(27)},
		{"CubeSurfaceArea", func() (num.Value, error) {
			return scalar.CubeSurfaceArea(ctx, num.Int(3), coerce.AsInt())
		}, num.Int(54)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.run()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestPythagoras checks the classic triple and a non-integer hypotenuse.
func TestPythagoras(t *testing.T) {
	ctx := num.DefaultContext()

	got, err := scalar.Pythagoras(ctx, num.Int(3), num.Int(4))
	require.NoError(t, err)
	assertClose(t, ctx, got, "5", "1e-30")

	got, err = scalar.Pythagoras(ctx, num.Int(1), num.Int(1))
	require.NoError(t, err)
	assertClose(t, ctx, got, "1.4142135623730950488016887242096980785697", "1e-30")
}

// TestDistance2D verifies the coordinate form against Pythagoras.
func TestDistance2D(t *testing.T) {
	ctx := num.DefaultContext()

	got, err := scalar.Distance2D(ctx, num.Int(1), num.Int(2), num.Int(4), num.Int(6))
	require.NoError(t, err)
	assertClose(t, ctx, got, "5", "1e-30")

	zero, err := scalar.Distance2D(ctx, num.Int(7), num.Int(7), num.Int(7), num.Int(7))
	require.NoError(t, err)
	d, err := ctx.ToDecimal(zero)
	require.NoError(t, err)
	assert.True(t, d.IsZero(), "distance from a point to itself must be 0")
}
