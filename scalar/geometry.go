package scalar

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmath/coerce"
	"github.com/katalvlaran/decmath/num"
)

// Circumference computes 2·π·r.
func Circumference(ctx *num.Context, radius num.Value, opts ...coerce.Option) (num.Value, error) {
	r, err := ctx.ToDecimal(radius)
	if err != nil {
		return num.Value{}, fmt.Errorf("Circumference: %w", err)
	}
	d, err := mulChain(ctx, decTwo, decPi, r)
	if err != nil {
		return num.Value{}, fmt.Errorf("Circumference: %w", err)
	}

	return finish(d, opts), nil
}

// AreaCircle computes π·r².
func AreaCircle(ctx *num.Context, radius num.Value, opts ...coerce.Option) (num.Value, error) {
	r, err := ctx.ToDecimal(radius)
	if err != nil {
		return num.Value{}, fmt.Errorf("AreaCircle: %w", err)
	}
	d, err := mulChain(ctx, decPi, r, r)
	if err != nil {
		return num.Value{}, fmt.Errorf("AreaCircle: %w", err)
	}

	return finish(d, opts), nil
}

// AreaSquare computes side².
func AreaSquare(ctx *num.Context, side num.Value, opts ...coerce.Option) (num.Value, error) {
	s, err := ctx.ToDecimal(side)
	if err != nil {
		return num.Value{}, fmt.Errorf("AreaSquare: %w", err)
	}
	d, err := ctx.Mul(s, s)
	if err != nil {
		return num.Value{}, fmt.Errorf("AreaSquare: %w", err)
	}

	return finish(d, opts), nil
}

// AreaRectangle computes length·breadth.
func AreaRectangle(ctx *num.Context, length, breadth num.Value, opts ...coerce.Option) (num.Value, error) {
	l, err := ctx.ToDecimal(length)
	if err != nil {
		return num.Value{}, fmt.Errorf("AreaRectangle: %w", err)
	}
	b, err := ctx.ToDecimal(breadth)
	if err != nil {
		return num.Value{}, fmt.Errorf("AreaRectangle: %w", err)
	}
	d, err := ctx.Mul(l, b)
	if err != nil {
		return num.Value{}, fmt.Errorf("AreaRectangle: %w", err)
	}

	return finish(d, opts), nil
}

// AreaTriangle computes base·height/2.
func AreaTriangle(ctx *num.Context, base, height num.Value, opts ...coerce.Option) (num.Value, error) {
	b, err := ctx.ToDecimal(base)
	if err != nil {
		return num.Value{}, fmt.Errorf("AreaTriangle: %w", err)
	}
	h, err := ctx.ToDecimal(height)
	if err != nil {
		return num.Value{}, fmt.Errorf("AreaTriangle: %w", err)
	}
	p, err := ctx.Mul(b, h)
	if err != nil {
		return num.Value{}, fmt.Errorf("AreaTriangle: %w", err)
	}
	d, err := ctx.Quo(p, decTwo)
	if err != nil {
		return num.Value{}, err
	}

	return finish(d, opts), nil
}

// PerimeterSquare computes 4·side.
func PerimeterSquare(ctx *num.Context, side num.Value, opts ...coerce.Option) (num.Value, error) {
	s, err := ctx.ToDecimal(side)
	if err != nil {
		return num.Value{}, fmt.Errorf("PerimeterSquare: %w", err)
	}
	d, err := ctx.Mul(decFour, s)
	if err != nil {
		return num.Value{}, fmt.Errorf("PerimeterSquare: %w", err)
	}

	return finish(d, opts), nil
}

// PerimeterRectangle computes 2·(length+breadth).
func PerimeterRectangle(ctx *num.Context, length, breadth num.Value, opts ...coerce.Option) (num.Value, error) {
	l, err := ctx.ToDecimal(length)
	if err != nil {
		return num.Value{}, fmt.Errorf("PerimeterRectangle: %w", err)
	}
	b, err := ctx.ToDecimal(breadth)
	if err != nil {
		return num.Value{}, fmt.Errorf("PerimeterRectangle: %w", err)
	}
	s, err := ctx.Add(l, b)
	if err != nil {
		return num.Value{}, fmt.Errorf("PerimeterRectangle: %w", err)
	}
	d, err := ctx.Mul(decTwo, s)
	if err != nil {
		return num.Value{}, fmt.Errorf("PerimeterRectangle: %w", err)
	}

	return finish(d, opts), nil
}

// Distance2D computes the Euclidean distance between (x1,y1) and (x2,y2)
// via the shared Newton square-root kernel.
func Distance2D(ctx *num.Context, x1, y1, x2, y2 num.Value, opts ...coerce.Option) (num.Value, error) {
	dx, err := diff(ctx, x2, x1)
	if err != nil {
		return num.Value{}, fmt.Errorf("Distance2D: %w", err)
	}
	dy, err := diff(ctx, y2, y1)
	if err != nil {
		return num.Value{}, fmt.Errorf("Distance2D: %w", err)
	}
	d, err := hypot(ctx, dx, dy)
	if err != nil {
		return num.Value{}, fmt.Errorf("Distance2D: %w", err)
	}

	return finish(d, opts), nil
}

// Pythagoras computes √(a²+b²) via the shared Newton square-root kernel.
func Pythagoras(ctx *num.Context, a, b num.Value, opts ...coerce.Option) (num.Value, error) {
	da, err := ctx.ToDecimal(a)
	if err != nil {
		return num.Value{}, fmt.Errorf("Pythagoras: %w", err)
	}
	db, err := ctx.ToDecimal(b)
	if err != nil {
		return num.Value{}, fmt.Errorf("Pythagoras: %w", err)
	}
	d, err := hypot(ctx, da, db)
	if err != nil {
		return num.Value{}, fmt.Errorf("Pythagoras: %w", err)
	}

	return finish(d, opts), nil
}

// CubeVolume computes side³.
func CubeVolume(ctx *num.Context, side num.Value, opts ...coerce.Option) (num.Value, error) {
	s, err := ctx.ToDecimal(side)
	if err != nil {
		return num.Value{}, fmt.Errorf("CubeVolume: %w", err)
	}
	d, err := mulChain(ctx, s, s, s)
	if err != nil {
		return num.Value{}, fmt.Errorf("CubeVolume: %w", err)
	}

	return finish(d, opts), nil
}

// CubeSurfaceArea computes 6·side².
func CubeSurfaceArea(ctx *num.Context, side num.Value, opts ...coerce.Option) (num.Value, error) {
	s, err := ctx.ToDecimal(side)
	if err != nil {
		return num.Value{}, fmt.Errorf("CubeSurfaceArea: %w", err)
	}
	d, err := mulChain(ctx, decSix, s, s)
	if err != nil {
		return num.Value{}, fmt.Errorf("CubeSurfaceArea: %w", err)
	}

	return finish(d, opts), nil
}

// mulChain multiplies three factors left to right at context precision.
func mulChain(ctx *num.Context, a, b, c *apd.Decimal) (*apd.Decimal, error) {
	p, err := ctx.Mul(a, b)
	if err != nil {
		return nil, err
	}

	return ctx.Mul(p, c)
}

// diff converts both values and returns a−b as a decimal.
func diff(ctx *num.Context, a, b num.Value) (*apd.Decimal, error) {
	da, err := ctx.ToDecimal(a)
	if err != nil {
		return nil, err
	}
	db, err := ctx.ToDecimal(b)
	if err != nil {
		return nil, err
	}

	return ctx.Sub(da, db)
}

// hypot returns √(a²+b²).
func hypot(ctx *num.Context, a, b *apd.Decimal) (*apd.Decimal, error) {
	aa, err := ctx.Mul(a, a)
	if err != nil {
		return nil, err
	}
	bb, err := ctx.Mul(b, b)
	if err != nil {
		return nil, err
	}
	s, err := ctx.Add(aa, bb)
	if err != nil {
		return nil, err
	}

	return newtonSqrt(ctx, s)
}
