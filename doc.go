// Package decmath is a decimal-safe scalar math and small-array toolkit:
// series-based trigonometry and logarithms, Newton-iteration roots, geometry
// and finance formulas, plus thin 1D/2D/3D array wrappers, all computed over
// arbitrary-precision decimals instead of binary floats.
//
// 🚀 What is decmath?
//
//	A small, deterministic library that brings together:
//		• num       — the Value union (int / float / decimal / rational), the
//		              precision-carrying Context, and safe conversion/division
//		• scalar    — sqrt/cbrt (Newton), ln/log (series), sin/cos/tan (Taylor),
//		              geometry, finance and integer utilities
//		• coerce    — the conditional int/float presentation policy ("condint")
//		• stabilize — opt-in memoization with divide-by-zero translation
//		• array     — Array1/Array2/Array3 with elementwise arithmetic and
//		              reductions (Sum, Mean, CumSum, Dot)
//
// ✨ Why choose decmath?
//
//   - No global numeric state – precision travels in an explicit num.Context
//   - Predictable errors – package-level sentinels, matched via errors.Is
//   - Pure computation – no I/O, no goroutines, no hidden state
//
// Quick example:
//
//	ctx := num.DefaultContext()
//	v, err := scalar.Sqrt(ctx, num.Int(2))
//	// v ≈ 1.4142135623730950488016887242096980785697
//
// Dive into the per-package doc.go files for contracts, errors and
// complexity notes.
package decmath
