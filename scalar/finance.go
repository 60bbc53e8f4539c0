package scalar

import (
	"fmt"

	"github.com/katalvlaran/decmath/coerce"
	"github.com/katalvlaran/decmath/num"
)

// Percentage computes part·100/total through the division choke point, so
// a zero total reports num.ErrDivideByZero.
func Percentage(ctx *num.Context, part, total num.Value, opts ...coerce.Option) (num.Value, error) {
	p, err := ctx.ToDecimal(part)
	if err != nil {
		return num.Value{}, fmt.Errorf("Percentage: %w", err)
	}
	t, err := ctx.ToDecimal(total)
	if err != nil {
		return num.Value{}, fmt.Errorf("Percentage: %w", err)
	}
	scaled, err := ctx.Mul(p, decHundred)
	if err != nil {
		return num.Value{}, fmt.Errorf("Percentage: %w", err)
	}
	q, err := ctx.Quo(scaled, t)
	if err != nil {
		return num.Value{}, err
	}

	return finish(q, opts), nil
}

// SimpleInterest computes principal·rate·time/100 (rate in percent).
func SimpleInterest(ctx *num.Context, principal, rate, time num.Value, opts ...coerce.Option) (num.Value, error) {
	p, err := ctx.ToDecimal(principal)
	if err != nil {
		return num.Value{}, fmt.Errorf("SimpleInterest: %w", err)
	}
	r, err := ctx.ToDecimal(rate)
	if err != nil {
		return num.Value{}, fmt.Errorf("SimpleInterest: %w", err)
	}
	t, err := ctx.ToDecimal(time)
	if err != nil {
		return num.Value{}, fmt.Errorf("SimpleInterest: %w", err)
	}
	prt, err := mulChain(ctx, p, r, t)
	if err != nil {
		return num.Value{}, fmt.Errorf("SimpleInterest: %w", err)
	}
	q, err := ctx.Quo(prt, decHundred)
	if err != nil {
		return num.Value{}, err
	}

	return finish(q, opts), nil
}

// CompoundInterest computes principal·(1+rate/100)^time − principal
// (rate in percent). The exponent may be fractional: the power is evaluated
// at context precision, not by repeated multiplication.
func CompoundInterest(ctx *num.Context, principal, rate, time num.Value, opts ...coerce.Option) (num.Value, error) {
	p, err := ctx.ToDecimal(principal)
	if err != nil {
		return num.Value{}, fmt.Errorf("CompoundInterest: %w", err)
	}
	r, err := ctx.ToDecimal(rate)
	if err != nil {
		return num.Value{}, fmt.Errorf("CompoundInterest: %w", err)
	}
	t, err := ctx.ToDecimal(time)
	if err != nil {
		return num.Value{}, fmt.Errorf("CompoundInterest: %w", err)
	}
	frac, err := ctx.Quo(r, decHundred)
	if err != nil {
		return num.Value{}, err
	}
	base, err := ctx.Add(decOne, frac)
	if err != nil {
		return num.Value{}, fmt.Errorf("CompoundInterest: %w", err)
	}
	grown, err := ctx.Pow(base, t)
	if err != nil {
		return num.Value{}, fmt.Errorf("CompoundInterest: %w", err)
	}
	amount, err := ctx.Mul(p, grown)
	if err != nil {
		return num.Value{}, fmt.Errorf("CompoundInterest: %w", err)
	}
	gain, err := ctx.Sub(amount, p)
	if err != nil {
		return num.Value{}, fmt.Errorf("CompoundInterest: %w", err)
	}

	return finish(gain, opts), nil
}
