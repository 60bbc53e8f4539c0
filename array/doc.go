// Package array provides fixed-dimension decimal containers — Array1,
// Array2 and Array3 — over the num/scalar core: elementwise arithmetic
// against a scalar or a same-shape array, and reductions (Sum, Mean,
// CumSum, Dot).
//
// What:
//
//   - Construction converts every leaf to a decimal eagerly via num.FromAny
//     and validates the shape up front: ragged rows or layers fail with
//     ErrRaggedShape, and a nested sequence where a number was expected
//     fails with num.ErrUnsupportedType.
//   - Each array captures a coerce.Policy at construction; reads (At,
//     ToList) run every leaf through it, writes (Set) re-normalize the
//     input back to decimals and invalidate the reduction memo.
//   - Binary operations take an Operand — an explicit scalar-or-array
//     union, resolved by match, never by runtime type sniffing. Array
//     operands must agree in length at every level or the operation fails
//     with ErrShapeMismatch.
//   - Division routes every element through the division choke point; on
//     the stabilized method surface a zero divisor is reported as
//     stabilize.ErrStabilizationViolated.
//
// Memoization:
//
//   - Reductions memoize per instance. The memo is invalidated by Set, so
//     a mutated array never serves stale results. Dot keys its entry on
//     the operand's current contents for the same reason.
//
// Errors:
//
//   - ErrNilContext, ErrNilArray: nil num.Context or array operand.
//   - ErrRaggedShape: inner lengths differ at construction.
//   - ErrShapeMismatch: operand shape differs in an elementwise op or Dot,
//     or a Set row/layer does not match the array's shape.
//   - ErrIndexOutOfRange: At/Set index outside the top dimension.
//   - ErrEmptyInput: Mean of an array with no elements.
//   - ErrInvalidOperand: an Operand with no arm populated.
//
// Complexity: elementwise ops and reductions are linear in the number of
// leaves; every leaf operation runs at context precision.
package array
