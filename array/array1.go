package array

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmath/coerce"
	"github.com/katalvlaran/decmath/num"
	"github.com/katalvlaran/decmath/stabilize"
)

// memoKeySep joins reduction names and operand digests in memo keys.
const memoKeySep = "\x1f"

// Array1 is a 1D container of decimal values with a captured presentation
// policy. Not safe for concurrent mutation.
type Array1 struct {
	ctx    *num.Context
	data   []*apd.Decimal
	policy coerce.Policy
	memo   map[string]any
}

// New1 builds a 1D array from a loosely-typed sequence, converting every
// leaf to a decimal eagerly. Presentation options (coerce.AsInt,
// coerce.AsFloat, coerce.When) are captured for the array's lifetime.
// Returns ErrNilContext, or num.ErrUnsupportedType for non-numeric leaves.
// Complexity: O(n) conversions.
func New1(ctx *num.Context, data []any, opts ...coerce.Option) (*Array1, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	leaves, err := convertLeaves(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("New1: %w", err)
	}

	return &Array1{ctx: ctx, data: leaves, policy: coerce.GatherPolicy(opts...)}, nil
}

// Len reports the number of elements.
func (a *Array1) Len() int { return len(a.data) }

// At returns the element at index i, run through the presentation policy.
func (a *Array1) At(i int) (num.Value, error) {
	if i < 0 || i >= len(a.data) {
		return num.Value{}, fmt.Errorf("At(%d): %w", i, ErrIndexOutOfRange)
	}

	return coerce.Normalize(num.Dec(a.data[i]), a.policy), nil
}

// Set replaces the element at index i, re-normalizing v to a decimal and
// invalidating the reduction memo.
func (a *Array1) Set(i int, v any) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("Set(%d): %w", i, ErrIndexOutOfRange)
	}
	d, err := convertLeaf(a.ctx, v)
	if err != nil {
		return fmt.Errorf("Set(%d): %w", i, err)
	}
	a.data[i] = d
	a.memo = nil

	return nil
}

// ToList materializes the contents, each element run through the
// presentation policy. The result is a fresh slice.
func (a *Array1) ToList() []num.Value {
	out := make([]num.Value, len(a.data))
	for i, d := range a.data {
		out[i] = coerce.Normalize(num.Dec(d), a.policy)
	}

	return out
}

// Add returns a new array with op added elementwise.
func (a *Array1) Add(op Operand) (*Array1, error) {
	return a.apply("Add", op, opAdd)
}

// Sub returns a new array with op subtracted elementwise.
func (a *Array1) Sub(op Operand) (*Array1, error) {
	return a.apply("Sub", op, opSub)
}

// Mul returns a new array multiplied elementwise by op.
func (a *Array1) Mul(op Operand) (*Array1, error) {
	return a.apply("Mul", op, opMul)
}

// Div returns a new array divided elementwise by op. A zero divisor is
// reported as stabilize.ErrStabilizationViolated (this is a stabilized
// surface; the raw choke point reports num.ErrDivideByZero).
func (a *Array1) Div(op Operand) (*Array1, error) {
	return a.apply("Div", op, opDiv)
}

// apply resolves the operand by explicit match and runs the kernel.
func (a *Array1) apply(opName string, op Operand, f binOp) (*Array1, error) {
	out := make([]*apd.Decimal, len(a.data))
	switch {
	case op.scalar != nil:
		s, err := a.ctx.ToDecimal(*op.scalar)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opName, err)
		}
		for i, x := range a.data {
			r, err := f(a.ctx, x, s)
			if err != nil {
				return nil, stabilize.Guard(err)
			}
			out[i] = r
		}
	case op.a1 != nil:
		if len(op.a1.data) != len(a.data) {
			return nil, fmt.Errorf("%s: %d vs %d elements: %w",
				opName, len(a.data), len(op.a1.data), ErrShapeMismatch)
		}
		for i, x := range a.data {
			r, err := f(a.ctx, x, op.a1.data[i])
			if err != nil {
				return nil, stabilize.Guard(err)
			}
			out[i] = r
		}
	case op.a2 != nil, op.a3 != nil:
		return nil, fmt.Errorf("%s: 1D vs higher-dimension operand: %w", opName, ErrShapeMismatch)
	default:
		return nil, fmt.Errorf("%s: %w", opName, ErrInvalidOperand)
	}

	return &Array1{ctx: a.ctx, data: out, policy: a.policy}, nil
}

// Sum reduces the array to the decimal sum of its elements, normalized.
// Memoized until the next Set.
func (a *Array1) Sum() (num.Value, error) {
	return memoValue(&a.memo, "Sum", func() (num.Value, error) {
		total, err := sumDecimals(a.ctx, a.data)
		if err != nil {
			return num.Value{}, err
		}

		return coerce.Normalize(num.Dec(total), a.policy), nil
	})
}

// Mean computes Sum/Len through the division choke point.
// Returns ErrEmptyInput for an empty array. Memoized until the next Set.
func (a *Array1) Mean() (num.Value, error) {
	return memoValue(&a.memo, "Mean", func() (num.Value, error) {
		if len(a.data) == 0 {
			return num.Value{}, fmt.Errorf("Mean: %w", ErrEmptyInput)
		}
		total, err := sumDecimals(a.ctx, a.data)
		if err != nil {
			return num.Value{}, err
		}
		m, err := a.ctx.Quo(total, apd.New(int64(len(a.data)), 0))
		if err != nil {
			return num.Value{}, stabilize.Guard(err)
		}

		return coerce.Normalize(num.Dec(m), a.policy), nil
	})
}

// CumSum returns the running totals, each normalized independently.
// The result is a fresh slice; memoized until the next Set.
func (a *Array1) CumSum() ([]num.Value, error) {
	cached, err := memoSlice(&a.memo, "CumSum", func() ([]num.Value, error) {
		out := make([]num.Value, len(a.data))
		total := new(apd.Decimal)
		for i, d := range a.data {
			next, err := a.ctx.Add(total, d)
			if err != nil {
				return nil, fmt.Errorf("CumSum: %w", err)
			}
			total = next
			out[i] = coerce.Normalize(num.Dec(total), a.policy)
		}

		return out, nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]num.Value, len(cached))
	copy(out, cached)

	return out, nil
}

// Dot computes the sum of elementwise products with other, normalized.
// Returns ErrNilArray or ErrShapeMismatch. Memoized on the pair of current
// contents until either side mutates.
func (a *Array1) Dot(other *Array1) (num.Value, error) {
	if other == nil {
		return num.Value{}, fmt.Errorf("Dot: %w", ErrNilArray)
	}
	if len(other.data) != len(a.data) {
		return num.Value{}, fmt.Errorf("Dot: %d vs %d elements: %w",
			len(a.data), len(other.data), ErrShapeMismatch)
	}

	return memoValue(&a.memo, "Dot"+memoKeySep+digest(other.data), func() (num.Value, error) {
		total := new(apd.Decimal)
		for i, x := range a.data {
			p, err := a.ctx.Mul(x, other.data[i])
			if err != nil {
				return num.Value{}, fmt.Errorf("Dot: %w", err)
			}
			total, err = a.ctx.Add(total, p)
			if err != nil {
				return num.Value{}, fmt.Errorf("Dot: %w", err)
			}
		}

		return coerce.Normalize(num.Dec(total), a.policy), nil
	})
}

// memoSlice serves a slice-valued reduction from a per-instance memo map.
func memoSlice(memo *map[string]any, key string, compute func() ([]num.Value, error)) ([]num.Value, error) {
	if v, ok := (*memo)[key]; ok {
		return v.([]num.Value), nil
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	if *memo == nil {
		*memo = make(map[string]any)
	}
	(*memo)[key] = v

	return v, nil
}

// convertLeaf normalizes one raw input to a decimal.
func convertLeaf(ctx *num.Context, x any) (*apd.Decimal, error) {
	v, err := num.FromAny(x)
	if err != nil {
		return nil, err
	}

	return ctx.ToDecimal(v)
}

// convertLeaves normalizes a flat sequence of raw inputs.
func convertLeaves(ctx *num.Context, data []any) ([]*apd.Decimal, error) {
	out := make([]*apd.Decimal, len(data))
	for i, x := range data {
		d, err := convertLeaf(ctx, x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = d
	}

	return out, nil
}

// sumDecimals adds a slice of decimals at context precision.
func sumDecimals(ctx *num.Context, ds []*apd.Decimal) (*apd.Decimal, error) {
	total := new(apd.Decimal)
	for _, d := range ds {
		next, err := ctx.Add(total, d)
		if err != nil {
			return nil, err
		}
		total = next
	}

	return total, nil
}

// digest renders current contents for content-addressed memo keys.
func digest(ds []*apd.Decimal) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.String()
	}

	return strings.Join(parts, memoKeySep)
}
