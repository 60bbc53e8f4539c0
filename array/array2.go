package array

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmath/coerce"
	"github.com/katalvlaran/decmath/num"
	"github.com/katalvlaran/decmath/stabilize"
)

// Array2 is a rectangular 2D container of decimal values with a captured
// presentation policy. Not safe for concurrent mutation.
type Array2 struct {
	ctx    *num.Context
	data   [][]*apd.Decimal
	policy coerce.Policy
	memo   map[string]any
}

// New2 builds a 2D array from nested sequences, converting every leaf to a
// decimal eagerly. Rows of differing length fail with ErrRaggedShape.
// Complexity: O(rows·cols) conversions.
func New2(ctx *num.Context, data [][]any, opts ...coerce.Option) (*Array2, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	rows := make([][]*apd.Decimal, len(data))
	for i, row := range data {
		if i > 0 && len(row) != len(data[0]) {
			return nil, fmt.Errorf("New2: row %d has %d elements, want %d: %w",
				i, len(row), len(data[0]), ErrRaggedShape)
		}
		leaves, err := convertLeaves(ctx, row)
		if err != nil {
			return nil, fmt.Errorf("New2: row %d: %w", i, err)
		}
		rows[i] = leaves
	}

	return &Array2{ctx: ctx, data: rows, policy: coerce.GatherPolicy(opts...)}, nil
}

// Len reports the number of rows.
func (a *Array2) Len() int { return len(a.data) }

// Cols reports the row width (0 for an empty array).
func (a *Array2) Cols() int {
	if len(a.data) == 0 {
		return 0
	}

	return len(a.data[0])
}

// At returns row i, each element run through the presentation policy.
func (a *Array2) At(i int) ([]num.Value, error) {
	if i < 0 || i >= len(a.data) {
		return nil, fmt.Errorf("At(%d): %w", i, ErrIndexOutOfRange)
	}

	return coerce.NormalizeList(decRow(a.data[i]), a.policy), nil
}

// Set replaces row i, re-normalizing every leaf to a decimal. The new row
// must match the array's width. Invalidates the reduction memo.
func (a *Array2) Set(i int, row []any) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("Set(%d): %w", i, ErrIndexOutOfRange)
	}
	if len(row) != a.Cols() {
		return fmt.Errorf("Set(%d): %d elements, want %d: %w",
			i, len(row), a.Cols(), ErrShapeMismatch)
	}
	leaves, err := convertLeaves(a.ctx, row)
	if err != nil {
		return fmt.Errorf("Set(%d): %w", i, err)
	}
	a.data[i] = leaves
	a.memo = nil

	return nil
}

// ToList materializes the contents as nested values, each leaf run through
// the presentation policy.
func (a *Array2) ToList() [][]num.Value {
	out := make([][]num.Value, len(a.data))
	for i, row := range a.data {
		out[i] = coerce.NormalizeList(decRow(row), a.policy)
	}

	return out
}

// Add returns a new array with op added elementwise.
func (a *Array2) Add(op Operand) (*Array2, error) {
	return a.apply("Add", op, opAdd)
}

// Sub returns a new array with op subtracted elementwise.
func (a *Array2) Sub(op Operand) (*Array2, error) {
	return a.apply("Sub", op, opSub)
}

// Mul returns a new array multiplied elementwise by op.
func (a *Array2) Mul(op Operand) (*Array2, error) {
	return a.apply("Mul", op, opMul)
}

// Div returns a new array divided elementwise by op. A zero divisor is
// reported as stabilize.ErrStabilizationViolated.
func (a *Array2) Div(op Operand) (*Array2, error) {
	return a.apply("Div", op, opDiv)
}

// apply resolves the operand by explicit match and runs the kernel over
// every leaf. Array operands must match in length at every level.
func (a *Array2) apply(opName string, op Operand, f binOp) (*Array2, error) {
	out := make([][]*apd.Decimal, len(a.data))
	switch {
	case op.scalar != nil:
		s, err := a.ctx.ToDecimal(*op.scalar)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opName, err)
		}
		for i, row := range a.data {
			outRow := make([]*apd.Decimal, len(row))
			for j, x := range row {
				r, err := f(a.ctx, x, s)
				if err != nil {
					return nil, stabilize.Guard(err)
				}
				outRow[j] = r
			}
			out[i] = outRow
		}
	case op.a2 != nil:
		b := op.a2
		if len(b.data) != len(a.data) {
			return nil, fmt.Errorf("%s: %d vs %d rows: %w",
				opName, len(a.data), len(b.data), ErrShapeMismatch)
		}
		for i, row := range a.data {
			if len(b.data[i]) != len(row) {
				return nil, fmt.Errorf("%s: row %d: %d vs %d elements: %w",
					opName, i, len(row), len(b.data[i]), ErrShapeMismatch)
			}
			outRow := make([]*apd.Decimal, len(row))
			for j, x := range row {
				r, err := f(a.ctx, x, b.data[i][j])
				if err != nil {
					return nil, stabilize.Guard(err)
				}
				outRow[j] = r
			}
			out[i] = outRow
		}
	case op.a1 != nil, op.a3 != nil:
		return nil, fmt.Errorf("%s: 2D vs other-dimension operand: %w", opName, ErrShapeMismatch)
	default:
		return nil, fmt.Errorf("%s: %w", opName, ErrInvalidOperand)
	}

	return &Array2{ctx: a.ctx, data: out, policy: a.policy}, nil
}

// Sum reduces over all leaves (flattened), normalized.
// Memoized until the next Set.
func (a *Array2) Sum() (num.Value, error) {
	return memoValue(&a.memo, "Sum", func() (num.Value, error) {
		total, err := a.rawSum()
		if err != nil {
			return num.Value{}, err
		}

		return coerce.Normalize(num.Dec(total), a.policy), nil
	})
}

// rawSum adds every leaf without applying the presentation policy.
func (a *Array2) rawSum() (*apd.Decimal, error) {
	total := new(apd.Decimal)
	for _, row := range a.data {
		rowSum, err := sumDecimals(a.ctx, row)
		if err != nil {
			return nil, err
		}
		total, err = a.ctx.Add(total, rowSum)
		if err != nil {
			return nil, err
		}
	}

	return total, nil
}

// Mean computes the flattened mean through the division choke point.
// Returns ErrEmptyInput when the array has no leaves.
func (a *Array2) Mean() (num.Value, error) {
	return memoValue(&a.memo, "Mean", func() (num.Value, error) {
		n := len(a.data) * a.Cols()
		if n == 0 {
			return num.Value{}, fmt.Errorf("Mean: %w", ErrEmptyInput)
		}
		total, err := a.rawSum()
		if err != nil {
			return num.Value{}, err
		}
		m, err := a.ctx.Quo(total, apd.New(int64(n), 0))
		if err != nil {
			return num.Value{}, stabilize.Guard(err)
		}

		return coerce.Normalize(num.Dec(m), a.policy), nil
	})
}

// decRow wraps a row of decimals as Values.
func decRow(row []*apd.Decimal) []num.Value {
	out := make([]num.Value, len(row))
	for i, d := range row {
		out[i] = num.Dec(d)
	}

	return out
}

// memoValue serves a scalar reduction from a per-instance memo map.
func memoValue(memo *map[string]any, key string, compute func() (num.Value, error)) (num.Value, error) {
	if v, ok := (*memo)[key]; ok {
		return v.(num.Value), nil
	}
	v, err := compute()
	if err != nil {
		return num.Value{}, err
	}
	if *memo == nil {
		*memo = make(map[string]any)
	}
	(*memo)[key] = v

	return v, nil
}
