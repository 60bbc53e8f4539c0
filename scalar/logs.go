package scalar

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmath/coerce"
	"github.com/katalvlaran/decmath/num"
)

// Ln computes the natural logarithm via the atanh substitution
// y = (x−1)/(x+1): it sums y^(2k+1)/(2k+1) until |term| ≤ 1e-40 and doubles
// the accumulator. The argument is first reduced to m·10^k with m in [1, 10),
// so convergence does not depend on the magnitude of x.
// Returns num.ErrDomain for x ≤ 0.
// Complexity: O(terms-to-cutoff), a few hundred terms at default precision.
func Ln(ctx *num.Context, x num.Value, opts ...coerce.Option) (num.Value, error) {
	d, err := ctx.ToDecimal(x)
	if err != nil {
		return num.Value{}, fmt.Errorf("Ln: %w", err)
	}
	if d.Sign() <= 0 {
		return num.Value{}, fmt.Errorf("Ln: non-positive input: %w", num.ErrDomain)
	}
	r, err := lnSeries(ctx, d)
	if err != nil {
		return num.Value{}, fmt.Errorf("Ln: %w", err)
	}

	return finish(r, opts), nil
}

// lnSeries is the shared kernel behind Ln and Log. Caller guarantees d > 0.
// It reduces d to m·10^k with m in [1, 10) and returns ln(m) + k·ln(10):
// without the reduction the series needs on the order of 46·max(x, 1/x)
// terms, rejecting mundane inputs like 1e5 once the term budget applies.
func lnSeries(ctx *num.Context, d *apd.Decimal) (*apd.Decimal, error) {
	k := int64(d.Exponent) + d.NumDigits() - 1
	m := new(apd.Decimal).Set(d)
	m.Exponent -= int32(k)

	r, err := lnCore(ctx, m)
	if err != nil {
		return nil, err
	}
	if k == 0 {
		return r, nil
	}
	shift, err := ctx.Mul(apd.New(k, 0), decLn10)
	if err != nil {
		return nil, err
	}

	return ctx.Add(r, shift)
}

// lnCore sums the atanh series for the reduced argument. |y| ≤ 9/11 there,
// so the cutoff is reached within a few hundred terms.
func lnCore(ctx *num.Context, d *apd.Decimal) (*apd.Decimal, error) {
	xm, err := ctx.Sub(d, decOne)
	if err != nil {
		return nil, err
	}
	xp, err := ctx.Add(d, decOne)
	if err != nil {
		return nil, err
	}
	y, err := ctx.Quo(xm, xp) // |y| < 1 for every positive finite x
	if err != nil {
		return nil, err
	}
	y2, err := ctx.Mul(y, y)
	if err != nil {
		return nil, err
	}

	term := new(apd.Decimal).Set(y)
	result := new(apd.Decimal)
	n := int64(1)
	for k := 0; absCmp(term, decTol); k++ {
		if k >= maxSeriesTerms {
			return nil, ErrNoConvergence
		}
		frac, err := ctx.Quo(term, apd.New(n, 0))
		if err != nil {
			return nil, err
		}
		result, err = ctx.Add(result, frac)
		if err != nil {
			return nil, err
		}
		term, err = ctx.Mul(term, y2)
		if err != nil {
			return nil, err
		}
		n += 2
	}

	return ctx.Mul(decTwo, result)
}

// Log computes the base-`base` logarithm as Ln(x)/Ln(base) through the
// division choke point. base == 1 therefore reports num.ErrDivideByZero,
// and non-positive x or base report num.ErrDomain.
func Log(ctx *num.Context, x, base num.Value, opts ...coerce.Option) (num.Value, error) {
	dx, err := ctx.ToDecimal(x)
	if err != nil {
		return num.Value{}, fmt.Errorf("Log: %w", err)
	}
	db, err := ctx.ToDecimal(base)
	if err != nil {
		return num.Value{}, fmt.Errorf("Log: %w", err)
	}
	if dx.Sign() <= 0 || db.Sign() <= 0 {
		return num.Value{}, fmt.Errorf("Log: non-positive input: %w", num.ErrDomain)
	}
	lx, err := lnSeries(ctx, dx)
	if err != nil {
		return num.Value{}, fmt.Errorf("Log: %w", err)
	}
	lb, err := lnSeries(ctx, db)
	if err != nil {
		return num.Value{}, fmt.Errorf("Log: %w", err)
	}
	q, err := ctx.Quo(lx, lb)
	if err != nil {
		return num.Value{}, err
	}

	return finish(q, opts), nil
}
