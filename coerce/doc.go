// Package coerce implements the conditional int/float presentation policy
// ("condint"): the per-call decision of whether a numeric result should
// present as an integer, a float, or stay in its native representation.
//
// What:
//
//   - Policy pairs a Target (int / float / none) with an optional Predicate;
//     a nil predicate always allows conversion.
//   - Normalize applies the policy to one num.Value; NormalizeList maps it
//     over a slice, preserving order and length.
//
// Rules (in order; first match wins):
//
//  1. TargetInt, predicate allows, value is an exact integer → integer form
//     (for rationals with denominator 1, the numerator).
//  2. TargetFloat, predicate allows → floating-point form unconditionally —
//     an explicit cast, not a correctness check.
//  3. No target, predicate allows, value is a float with no fractional
//     part → integer form.
//  4. Otherwise the value is returned unchanged.
//
// The asymmetry in rule 3 is deliberate and load-bearing: only floats
// auto-coerce. A decimal or rational that happens to be an exact integer
// stays in its own representation unless TargetInt is requested.
//
// Edge cases: an exact integer too large for int64 is left unchanged by
// rules 1 and 3, and a decimal too large for a finite float64 is left
// unchanged by rule 2 — Normalize never fabricates infinities.
//
// Complexity: O(1) per value; O(n) for NormalizeList.
package coerce
