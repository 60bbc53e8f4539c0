package array

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmath/num"
)

// Operand is the right-hand side of an elementwise operation: either a
// scalar broadcast over every element, or an array matched elementwise.
// Exactly one arm is populated; methods resolve it by explicit match.
type Operand struct {
	scalar *num.Value
	a1     *Array1
	a2     *Array2
	a3     *Array3
}

// Scalar wraps a scalar broadcast operand.
func Scalar(v num.Value) Operand { return Operand{scalar: &v} }

// Arr1 wraps a 1D array operand.
func Arr1(a *Array1) Operand { return Operand{a1: a} }

// Arr2 wraps a 2D array operand.
func Arr2(a *Array2) Operand { return Operand{a2: a} }

// Arr3 wraps a 3D array operand.
func Arr3(a *Array3) Operand { return Operand{a3: a} }

// binOp is an elementwise kernel at context precision.
type binOp func(ctx *num.Context, x, y *apd.Decimal) (*apd.Decimal, error)

func opAdd(ctx *num.Context, x, y *apd.Decimal) (*apd.Decimal, error) { return ctx.Add(x, y) }
func opSub(ctx *num.Context, x, y *apd.Decimal) (*apd.Decimal, error) { return ctx.Sub(x, y) }
func opMul(ctx *num.Context, x, y *apd.Decimal) (*apd.Decimal, error) { return ctx.Mul(x, y) }

// opDiv routes through the division choke point, so a zero divisor
// surfaces as num.ErrDivideByZero and is translated by the stabilized
// method surface.
func opDiv(ctx *num.Context, x, y *apd.Decimal) (*apd.Decimal, error) { return ctx.Quo(x, y) }
