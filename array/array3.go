package array

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmath/coerce"
	"github.com/katalvlaran/decmath/num"
	"github.com/katalvlaran/decmath/stabilize"
)

// Array3 is a box-shaped 3D container of decimal values with a captured
// presentation policy. Not safe for concurrent mutation.
type Array3 struct {
	ctx    *num.Context
	data   [][][]*apd.Decimal
	policy coerce.Policy
	memo   map[string]any
}

// New3 builds a 3D array from nested sequences, converting every leaf to a
// decimal eagerly. Layers must agree in row count and rows in width, or
// construction fails with ErrRaggedShape.
// Complexity: O(layers·rows·cols) conversions.
func New3(ctx *num.Context, data [][][]any, opts ...coerce.Option) (*Array3, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	layers := make([][][]*apd.Decimal, len(data))
	for i, layer := range data {
		if i > 0 && len(layer) != len(data[0]) {
			return nil, fmt.Errorf("New3: layer %d has %d rows, want %d: %w",
				i, len(layer), len(data[0]), ErrRaggedShape)
		}
		rows := make([][]*apd.Decimal, len(layer))
		for j, row := range layer {
			if (i > 0 || j > 0) && len(row) != len(data[0][0]) {
				return nil, fmt.Errorf("New3: layer %d row %d has %d elements, want %d: %w",
					i, j, len(row), len(data[0][0]), ErrRaggedShape)
			}
			leaves, err := convertLeaves(ctx, row)
			if err != nil {
				return nil, fmt.Errorf("New3: layer %d row %d: %w", i, j, err)
			}
			rows[j] = leaves
		}
		layers[i] = rows
	}

	return &Array3{ctx: ctx, data: layers, policy: coerce.GatherPolicy(opts...)}, nil
}

// Len reports the number of layers.
func (a *Array3) Len() int { return len(a.data) }

// Rows reports the per-layer row count (0 for an empty array).
func (a *Array3) Rows() int {
	if len(a.data) == 0 {
		return 0
	}

	return len(a.data[0])
}

// Cols reports the row width (0 for an empty array).
func (a *Array3) Cols() int {
	if a.Rows() == 0 {
		return 0
	}

	return len(a.data[0][0])
}

// At returns layer i, each leaf run through the presentation policy.
func (a *Array3) At(i int) ([][]num.Value, error) {
	if i < 0 || i >= len(a.data) {
		return nil, fmt.Errorf("At(%d): %w", i, ErrIndexOutOfRange)
	}
	layer := make([][]num.Value, len(a.data[i]))
	for j, row := range a.data[i] {
		layer[j] = coerce.NormalizeList(decRow(row), a.policy)
	}

	return layer, nil
}

// Set replaces layer i, re-normalizing every leaf to a decimal. The new
// layer must match the array's rows×cols shape. Invalidates the memo.
func (a *Array3) Set(i int, layer [][]any) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("Set(%d): %w", i, ErrIndexOutOfRange)
	}
	if len(layer) != a.Rows() {
		return fmt.Errorf("Set(%d): %d rows, want %d: %w",
			i, len(layer), a.Rows(), ErrShapeMismatch)
	}
	rows := make([][]*apd.Decimal, len(layer))
	for j, row := range layer {
		if len(row) != a.Cols() {
			return fmt.Errorf("Set(%d): row %d: %d elements, want %d: %w",
				i, j, len(row), a.Cols(), ErrShapeMismatch)
		}
		leaves, err := convertLeaves(a.ctx, row)
		if err != nil {
			return fmt.Errorf("Set(%d): row %d: %w", i, j, err)
		}
		rows[j] = leaves
	}
	a.data[i] = rows
	a.memo = nil

	return nil
}

// ToList materializes the contents as nested values, each leaf run through
// the presentation policy.
func (a *Array3) ToList() [][][]num.Value {
	out := make([][][]num.Value, len(a.data))
	for i, layer := range a.data {
		rows := make([][]num.Value, len(layer))
		for j, row := range layer {
			rows[j] = coerce.NormalizeList(decRow(row), a.policy)
		}
		out[i] = rows
	}

	return out
}

// Add returns a new array with op added elementwise.
func (a *Array3) Add(op Operand) (*Array3, error) {
	return a.apply("Add", op, opAdd)
}

// Sub returns a new array with op subtracted elementwise.
func (a *Array3) Sub(op Operand) (*Array3, error) {
	return a.apply("Sub", op, opSub)
}

// Mul returns a new array multiplied elementwise by op.
func (a *Array3) Mul(op Operand) (*Array3, error) {
	return a.apply("Mul", op, opMul)
}

// Div returns a new array divided elementwise by op. A zero divisor is
// reported as stabilize.ErrStabilizationViolated.
func (a *Array3) Div(op Operand) (*Array3, error) {
	return a.apply("Div", op, opDiv)
}

// apply resolves the operand by explicit match and runs the kernel over
// every leaf. Array operands must match in length at every level.
func (a *Array3) apply(opName string, op Operand, f binOp) (*Array3, error) {
	out := make([][][]*apd.Decimal, len(a.data))
	switch {
	case op.scalar != nil:
		s, err := a.ctx.ToDecimal(*op.scalar)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opName, err)
		}
		for i, layer := range a.data {
			outLayer := make([][]*apd.Decimal, len(layer))
			for j, row := range layer {
				outRow := make([]*apd.Decimal, len(row))
				for k, x := range row {
					r, err := f(a.ctx, x, s)
					if err != nil {
						return nil, stabilize.Guard(err)
					}
					outRow[k] = r
				}
				outLayer[j] = outRow
			}
			out[i] = outLayer
		}
	case op.a3 != nil:
		b := op.a3
		if len(b.data) != len(a.data) {
			return nil, fmt.Errorf("%s: %d vs %d layers: %w",
				opName, len(a.data), len(b.data), ErrShapeMismatch)
		}
		for i, layer := range a.data {
			if len(b.data[i]) != len(layer) {
				return nil, fmt.Errorf("%s: layer %d: %d vs %d rows: %w",
					opName, i, len(layer), len(b.data[i]), ErrShapeMismatch)
			}
			outLayer := make([][]*apd.Decimal, len(layer))
			for j, row := range layer {
				if len(b.data[i][j]) != len(row) {
					return nil, fmt.Errorf("%s: layer %d row %d: %d vs %d elements: %w",
						opName, i, j, len(row), len(b.data[i][j]), ErrShapeMismatch)
				}
				outRow := make([]*apd.Decimal, len(row))
				for k, x := range row {
					r, err := f(a.ctx, x, b.data[i][j][k])
					if err != nil {
						return nil, stabilize.Guard(err)
					}
					outRow[k] = r
				}
				outLayer[j] = outRow
			}
			out[i] = outLayer
		}
	case op.a1 != nil, op.a2 != nil:
		return nil, fmt.Errorf("%s: 3D vs other-dimension operand: %w", opName, ErrShapeMismatch)
	default:
		return nil, fmt.Errorf("%s: %w", opName, ErrInvalidOperand)
	}

	return &Array3{ctx: a.ctx, data: out, policy: a.policy}, nil
}

// Sum reduces over all leaves (flattened), normalized.
// Memoized until the next Set.
func (a *Array3) Sum() (num.Value, error) {
	return memoValue(&a.memo, "Sum", func() (num.Value, error) {
		total, err := a.rawSum()
		if err != nil {
			return num.Value{}, err
		}

		return coerce.Normalize(num.Dec(total), a.policy), nil
	})
}

// rawSum adds every leaf without applying the presentation policy.
func (a *Array3) rawSum() (*apd.Decimal, error) {
	total := new(apd.Decimal)
	for _, layer := range a.data {
		for _, row := range layer {
			rowSum, err := sumDecimals(a.ctx, row)
			if err != nil {
				return nil, err
			}
			total, err = a.ctx.Add(total, rowSum)
			if err != nil {
				return nil, err
			}
		}
	}

	return total, nil
}

// Mean computes the flattened mean through the division choke point.
// Returns ErrEmptyInput when the array has no leaves.
func (a *Array3) Mean() (num.Value, error) {
	return memoValue(&a.memo, "Mean", func() (num.Value, error) {
		n := len(a.data) * a.Rows() * a.Cols()
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
