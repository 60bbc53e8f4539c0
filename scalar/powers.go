package scalar

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmath/coerce"
	"github.com/katalvlaran/decmath/num"
)

// Power raises base to an integer exponent by repeated multiplication —
// O(|exp|) context multiplications, deliberately not square-and-multiply.
// A negative exponent takes the reciprocal through the division choke
// point, so Power(0, -1) reports num.ErrDivideByZero.
func Power(ctx *num.Context, base num.Value, exp int64, opts ...coerce.Option) (num.Value, error) {
	b, err := ctx.ToDecimal(base)
	if err != nil {
		return num.Value{}, fmt.Errorf("Power: %w", err)
	}
	n := exp
	if n < 0 {
		n = -n
	}
	result := new(apd.Decimal).Set(decOne)
	for i := int64(0); i < n; i++ {
		result, err = ctx.Mul(result, b)
		if err != nil {
			return num.Value{}, fmt.Errorf("Power: %w", err)
		}
	}
	if exp < 0 {
		result, err = ctx.Quo(decOne, result)
		if err != nil {
			return num.Value{}, err
		}
	}

	return finish(result, opts), nil
}

// Fact computes n! as an exact integer-valued decimal: the product runs on
// the coefficient directly, so no rounding to context precision occurs.
// Returns num.ErrDomain for negative n. Complexity: O(n) big-int products.
func Fact(n int64, opts ...coerce.Option) (num.Value, error) {
	if n < 0 {
		return num.Value{}, fmt.Errorf("Fact: %d: %w", n, num.ErrDomain)
	}
	coeff := new(apd.BigInt).SetInt64(1)
	step := new(apd.BigInt)
	for i := int64(2); i <= n; i++ {
		coeff.Mul(coeff, step.SetInt64(i))
	}

	return finish(apd.NewWithBigInt(coeff, 0), opts), nil
}

// Fibonacci materializes the first n Fibonacci numbers (0, 1, 1, 2, ...),
// each run through the presentation policy independently. n <= 0 yields an
// empty slice. Complexity: O(n) context additions.
func Fibonacci(ctx *num.Context, n int64, opts ...coerce.Option) ([]num.Value, error) {
	policy := coerce.GatherPolicy(opts...)
	series := make([]num.Value, 0, max(n, 0))
	a := new(apd.Decimal)
	b := new(apd.Decimal).Set(decOne)
	for i := int64(0); i < n; i++ {
		series = append(series, coerce.Normalize(num.Dec(new(apd.Decimal).Set(a)), policy))
		next, err := ctx.Add(a, b)
		if err != nil {
			return nil, fmt.Errorf("Fibonacci: %w", err)
		}
		a, b = b, next
	}

	return series, nil
}
