package scalar

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmath/coerce"
	"github.com/katalvlaran/decmath/num"
)

// Sqrt computes the square root of x by Newton's method: 30 iterations from
// the seed x/2, no convergence check beyond the iteration count.
// Returns num.ErrDomain for negative x. Sqrt(0) is exactly 0.
// Complexity: O(newtonIterations) context divisions.
func Sqrt(ctx *num.Context, x num.Value, opts ...coerce.Option) (num.Value, error) {
	d, err := ctx.ToDecimal(x)
	if err != nil {
		return num.Value{}, fmt.Errorf("Sqrt: %w", err)
	}
	if d.Sign() < 0 {
		return num.Value{}, fmt.Errorf("Sqrt: negative input: %w", num.ErrDomain)
	}
	root, err := newtonSqrt(ctx, d)
	if err != nil {
		return num.Value{}, fmt.Errorf("Sqrt: %w", err)
	}

	return finish(root, opts), nil
}

// newtonSqrt is the shared kernel behind Sqrt, Pythagoras and Distance2D.
// The caller guarantees d >= 0.
func newtonSqrt(ctx *num.Context, d *apd.Decimal) (*apd.Decimal, error) {
	// The zero seed would make the first x/guess division blow up.
	if d.IsZero() {
		return new(apd.Decimal), nil
	}
	guess, err := ctx.Quo(d, decTwo)
	if err != nil {
		return nil, err
	}
	for i := 0; i < newtonIterations; i++ {
		// guess = (guess + x/guess) / 2
		q, err := ctx.Quo(d, guess)
		if err != nil {
			return nil, err
		}
		s, err := ctx.Add(guess, q)
		if err != nil {
			return nil, err
		}
		guess, err = ctx.Quo(s, decTwo)
		if err != nil {
			return nil, err
		}
	}

	return guess, nil
}

// Cbrt computes the cube root of x by Newton's method: 30 iterations from
// the seed x/3. Negative inputs are valid. Cbrt(0) is exactly 0.
// Complexity: O(newtonIterations) context operations.
func Cbrt(ctx *num.Context, x num.Value, opts ...coerce.Option) (num.Value, error) {
	d, err := ctx.ToDecimal(x)
	if err != nil {
		return num.Value{}, fmt.Errorf("Cbrt: %w", err)
	}
	if d.IsZero() {
		return finish(new(apd.Decimal), opts), nil
	}
	guess, err := ctx.Quo(d, decThree)
	if err != nil {
		return num.Value{}, fmt.Errorf("Cbrt: %w", err)
	}
	for i := 0; i < newtonIterations; i++ {
		// guess = (2*guess + x/guess²) / 3
		sq, err := ctx.Mul(guess, guess)
		if err != nil {
			return num.Value{}, fmt.Errorf("Cbrt: %w", err)
		}
		q, err := ctx.Quo(d, sq)
		if err != nil {
			return num.Value{}, fmt.Errorf("Cbrt: %w", err)
		}
		dbl, err := ctx.Mul(decTwo, guess)
		if err != nil {
			return num.Value{}, fmt.Errorf("Cbrt: %w", err)
		}
		s, err := ctx.Add(dbl, q)
		if err != nil {
			return num.Value{}, fmt.Errorf("Cbrt: %w", err)
		}
		guess, err = ctx.Quo(s, decThree)
		if err != nil {
			return num.Value{}, fmt.Errorf("Cbrt: %w", err)
		}
	}

	return finish(guess, opts), nil
}
