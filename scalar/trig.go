package scalar

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmath/coerce"
	"github.com/katalvlaran/decmath/num"
)

// Sin computes sine by its Taylor series around 0, multiplying each term by
// −x²/((2n)(2n+1)) until |term| ≤ 1e-40. There is no range reduction:
// accuracy degrades as |x| grows (see package doc).
func Sin(ctx *num.Context, x num.Value, opts ...coerce.Option) (num.Value, error) {
	d, err := ctx.ToDecimal(x)
	if err != nil {
		return num.Value{}, fmt.Errorf("Sin: %w", err)
	}
	r, err := sinSeries(ctx, d)
	if err != nil {
		return num.Value{}, fmt.Errorf("Sin: %w", err)
	}

	return finish(r, opts), nil
}

// Cos computes cosine by its Taylor series around 0, multiplying each term
// by −x²/((2n−1)(2n)) until |term| ≤ 1e-40. No range reduction.
func Cos(ctx *num.Context, x num.Value, opts ...coerce.Option) (num.Value, error) {
	d, err := ctx.ToDecimal(x)
	if err != nil {
		return num.Value{}, fmt.Errorf("Cos: %w", err)
	}
	r, err := cosSeries(ctx, d)
	if err != nil {
		return num.Value{}, fmt.Errorf("Cos: %w", err)
	}

	return finish(r, opts), nil
}

// Tan computes tangent as Sin/Cos through the division choke point, so an
// argument where the cosine rounds to zero reports num.ErrDivideByZero.
func Tan(ctx *num.Context, x num.Value, opts ...coerce.Option) (num.Value, error) {
	d, err := ctx.ToDecimal(x)
	if err != nil {
		return num.Value{}, fmt.Errorf("Tan: %w", err)
	}
	s, err := sinSeries(ctx, d)
	if err != nil {
		return num.Value{}, fmt.Errorf("Tan: %w", err)
	}
	c, err := cosSeries(ctx, d)
	if err != nil {
		return num.Value{}, fmt.Errorf("Tan: %w", err)
	}
	q, err := ctx.Quo(s, c)
	if err != nil {
		return num.Value{}, err
	}

	return finish(q, opts), nil
}

// sinSeries sums the sine Taylor series for d.
func sinSeries(ctx *num.Context, d *apd.Decimal) (*apd.Decimal, error) {
	negSq, err := negSquare(ctx, d)
	if err != nil {
		return nil, err
	}

	term := new(apd.Decimal).Set(d)
	result := new(apd.Decimal).Set(d)
	for n := int64(1); absCmp(term, decTol); n++ {
		if n > maxSeriesTerms {
			return nil, ErrNoConvergence
		}
		// term *= −x² / ((2n)(2n+1))
		term, err = nextTerm(ctx, term, negSq, 2*n, 2*n+1)
		if err != nil {
			return nil, err
		}
		result, err = ctx.Add(result, term)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// cosSeries sums the cosine Taylor series for d.
func cosSeries(ctx *num.Context, d *apd.Decimal) (*apd.Decimal, error) {
	negSq, err := negSquare(ctx, d)
	if err != nil {
		return nil, err
	}

	term := new(apd.Decimal).Set(decOne)
	result := new(apd.Decimal).Set(decOne)
	for n := int64(1); absCmp(term, decTol); n++ {
		if n > maxSeriesTerms {
			return nil, ErrNoConvergence
		}
		// term *= −x² / ((2n−1)(2n))
		term, err = nextTerm(ctx, term, negSq, 2*n-1, 2*n)
		if err != nil {
			return nil, err
		}
		result, err = ctx.Add(result, term)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// negSquare returns −d².
func negSquare(ctx *num.Context, d *apd.Decimal) (*apd.Decimal, error) {
	sq, err := ctx.Mul(d, d)
	if err != nil {
		return nil, err
	}

	return new(apd.Decimal).Neg(sq), nil
}

// nextTerm advances a Taylor term: term * negSq / (a*b).
func nextTerm(ctx *num.Context, term, negSq *apd.Decimal, a, b int64) (*apd.Decimal, error) {
	t, err := ctx.Mul(term, negSq)
	if err != nil {
		return nil, err
	}
	denom, err := ctx.Mul(apd.New(a, 0), apd.New(b, 0))
	if err != nil {
		return nil, err
	}

	return ctx.Quo(t, denom)
}
