// Package scalar implements decmath's numeric algorithms over num.Value:
// Newton-iteration roots, series-based logarithms and trigonometry, and
// closed-form geometry, finance and integer utilities.
//
// What:
//
//   - Every function accepts int/float/decimal/rational inputs as num.Value,
//     normalizes to decimal, computes at the precision of the supplied
//     num.Context, and runs the result through coerce.Normalize with the
//     per-call presentation options (coerce.AsInt, coerce.AsFloat,
//     coerce.When).
//   - SafeDiv is the public face of the division choke point; a zero
//     divisor surfaces as num.ErrDivideByZero.
//
// Algorithms:
//
//   - Sqrt/Cbrt: Newton's method, 30 fixed iterations, seeds x/2 and x/3.
//     No convergence check beyond the iteration count — residual error is
//     bounded by the iteration count and the working precision.
//   - Power: repeated multiplication, O(|exp|) — kept deliberately simple
//     over exponentiation-by-squaring.
//   - Ln: the argument is reduced to m·10^k with m in [1, 10), then the
//     atanh substitution y=(m−1)/(m+1) sums terms y^(2k+1)/(2k+1) until
//     |term| ≤ 1e-40, doubles the result and adds k·ln(10).
//   - Sin/Cos: Taylor series around 0 with term recurrences
//     −x²/((2n)(2n+1)) and −x²/((2n−1)(2n)), cutoff 1e-40. There is no
//     range reduction: accuracy degrades as |x| grows, and inputs far
//     outside ±100 can exhaust the term budget (ErrNoConvergence).
//
// Errors:
//
//   - num.ErrDomain: negative Sqrt/Fact, non-positive Ln, CollatzSteps < 1.
//   - num.ErrDivideByZero: zero divisor anywhere (SafeDiv, Tan at cos=0,
//     Percentage with total 0, IsHarshad(0)).
//   - ErrNoConvergence: a series exceeded its term budget before reaching
//     the cutoff.
//
// Complexity: Newton functions are O(iterations); series functions are
// O(terms-to-cutoff); Power and Fact are linear in the exponent/argument.
package scalar
