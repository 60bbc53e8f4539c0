package coerce

import "github.com/katalvlaran/decmath/num"

// Target selects the presentation a caller wants for a numeric result.
type Target uint8

const (
	// TargetNone applies only the float→int auto-coercion rule.
	TargetNone Target = iota
	// TargetInt forces integer presentation when the value is exactly integral.
	TargetInt
	// TargetFloat forces floating-point presentation unconditionally.
	TargetFloat
)

// String returns the lowercase name of the target.
func (t Target) String() string {
	switch t {
	case TargetInt:
		return "int"
	case TargetFloat:
		return "float"
	default:
		return "none"
	}
}

// Predicate decides, per value, whether a conversion is allowed.
// A nil Predicate allows everything.
type Predicate func(num.Value) bool

// Policy is the (target, predicate) pair threaded through every numeric
// call. The zero Policy leaves everything unchanged except exact-integer
// floats, which auto-coerce to int.
type Policy struct {
	Target Target
	Cond   Predicate
}

// allows reports whether the predicate admits v (nil ⇒ always true).
func (p Policy) allows(v num.Value) bool {
	return p.Cond == nil || p.Cond(v)
}

// Normalize applies the policy rules to v. See the package documentation
// for the exact rule order; conversions that cannot be represented
// (int64 overflow, non-finite float) leave v unchanged.
func Normalize(v num.Value, p Policy) num.Value {
	switch {
	case p.Target == TargetInt && p.allows(v) && v.IsExactInt():
		if i, ok := v.Int64(); ok {
			return num.Int(i)
		}

		return v
	case p.Target == TargetFloat && p.allows(v):
		if f, ok := v.Float64(); ok {
			return num.Float(f)
		}

		return v
	case p.Target == TargetNone && p.allows(v) && v.Kind() == num.KindFloat && v.IsExactInt():
		if i, ok := v.Int64(); ok {
			return num.Int(i)
		}

		return v
	default:
		return v
	}
}

// NormalizeList applies Normalize elementwise, preserving order and length.
func NormalizeList(vs []num.Value, p Policy) []num.Value {
	out := make([]num.Value, len(vs))
	for i, v := range vs {
		out[i] = Normalize(v, p)
	}

	return out
}
