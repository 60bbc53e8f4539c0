// Package num defines the numeric foundation of decmath: the Value union,
// the precision-carrying Context, and safe conversion and division.
//
// What:
//
//   - Value is a tagged union over int64, float64, *apd.Decimal and *big.Rat.
//     Every number entering the library is represented as a Value; arithmetic
//     always happens on the decimal form.
//   - Context holds the working precision (significant digits). There is no
//     process-global precision: a Context is constructed once, is immutable
//     afterwards, and is passed explicitly to every computation.
//   - FromAny converts loosely-typed inputs (all int/uint widths, floats,
//     decimal strings, *apd.Decimal, *big.Rat) into a Value, rejecting
//     anything else — unsupported input is an error, never a truncation.
//   - Context.Quo is the single division choke point: every division in the
//     library routes through it and a zero divisor always surfaces as
//     ErrDivideByZero.
//
// Why:
//
//   - Binary floats drift; decimal arithmetic keeps results exact to the
//     configured precision, which the series expansions in package scalar
//     rely on.
//   - A call-scoped Context removes the shared-mutable-precision hazard of
//     a process-wide decimal context.
//
// Errors:
//
//   - ErrUnsupportedType: input type not convertible to a Value.
//   - ErrNilValue: nil *apd.Decimal or *big.Rat handed in.
//   - ErrDivideByZero: zero divisor at the division choke point.
//   - ErrDomain: argument outside a function's mathematical domain.
//   - ErrBadPrecision: context precision below MinPrecision.
//
// Complexity: all conversions are O(1) in the number of digits except
// rational conversion, which performs one division at context precision.
package num
