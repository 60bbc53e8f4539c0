package scalar

import (
	"fmt"

	"github.com/katalvlaran/decmath/coerce"
	"github.com/katalvlaran/decmath/num"
)

// DigitalRoot repeatedly sums the decimal digits of |n| until a single
// digit remains. Complexity: O(log²n).
func DigitalRoot(n int64) int64 {
	if n < 0 {
		n = -n
	}
	for n >= 10 {
		n = digitSum(n)
	}

	return n
}

// IsHarshad reports whether |n| is divisible by its digit sum.
// Returns num.ErrDivideByZero for n == 0, whose digit sum is zero.
func IsHarshad(n int64) (bool, error) {
	if n < 0 {
		n = -n
	}
	sum := digitSum(n)
	if sum == 0 {
		return false, num.ErrDivideByZero
	}

	return n%sum == 0, nil
}

// CollatzSteps counts the 3n+1 steps needed to reach 1.
// Returns num.ErrDomain for n < 1 — those orbits never reach 1.
func CollatzSteps(n int64) (int64, error) {
	if n < 1 {
		return 0, fmt.Errorf("CollatzSteps: %d: %w", n, num.ErrDomain)
	}
	steps := int64(0)
	for n != 1 {
		if n%2 == 0 {
			n /= 2
		} else {
			n = 3*n + 1
		}
		steps++
	}

	return steps, nil
}

// Triangular computes the n-th triangular number n·(n+1)/2 over decimals,
// so fractional n is accepted (generalized triangular value).
func Triangular(ctx *num.Context, n num.Value, opts ...coerce.Option) (num.Value, error) {
	d, err := ctx.ToDecimal(n)
	if err != nil {
		return num.Value{}, fmt.Errorf("Triangular: %w", err)
	}
	next, err := ctx.Add(d, decOne)
	if err != nil {
		return num.Value{}, fmt.Errorf("Triangular: %w", err)
	}
	prod, err := ctx.Mul(d, next)
	if err != nil {
		return num.Value{}, fmt.Errorf("Triangular: %w", err)
	}
	half, err := ctx.Quo(prod, decTwo)
	if err != nil {
		return num.Value{}, err
	}

	return finish(half, opts), nil
}

// digitSum adds the base-10 digits of a non-negative n.
func digitSum(n int64) int64 {
	sum := int64(0)
	for n > 0 {
		sum += n % 10
		n /= 10
	}

	return sum
}
