package array

import "errors"

var (
	// ErrNilContext indicates a nil *num.Context was passed to a constructor.
	ErrNilContext = errors.New("array: nil context")

	// ErrNilArray indicates a nil array operand.
	ErrNilArray = errors.New("array: nil array")

	// ErrRaggedShape indicates inner sequences of differing length at
	// construction time.
	ErrRaggedShape = errors.New("array: ragged shape")

	// ErrShapeMismatch indicates operands of differing shape in an
	// elementwise operation, dot product, or indexed write.
	ErrShapeMismatch = errors.New("array: shape mismatch")

	// ErrIndexOutOfRange indicates an index outside the top dimension.
	ErrIndexOutOfRange = errors.New("array: index out of range")

	// ErrEmptyInput indicates a reduction that is undefined on an empty
	// array (mean).
	ErrEmptyInput = errors.New("array: empty input")

	// ErrInvalidOperand indicates an Operand with no arm populated.
	ErrInvalidOperand = errors.New("array: invalid operand")
)
