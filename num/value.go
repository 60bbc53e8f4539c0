package num

import (
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Kind identifies which arm of the Value union is populated.
type Kind uint8

const (
	// KindInt marks an int64-backed Value.
	KindInt Kind = iota
	// KindFloat marks a float64-backed Value.
	KindFloat
	// KindDecimal marks an *apd.Decimal-backed Value.
	KindDecimal
	// KindRational marks a *big.Rat-backed Value.
	KindRational
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindRational:
		return "rational"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the four numeric representations accepted by
// decmath. The zero Value is the integer 0. Values are immutable by
// convention: the decimal and rational arms hold pointers, and callers must
// not mutate a number after handing it to the library.
type Value struct {
	kind Kind
	i    int64
	f    float64
	dec  *apd.Decimal
	rat  *big.Rat
}

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Dec returns a decimal Value backed by d. The pointer is stored as-is;
// d must not be mutated afterwards.
func Dec(d *apd.Decimal) Value { return Value{kind: KindDecimal, dec: d} }

// DecString parses s as a decimal and returns the resulting Value.
// It panics on malformed input and is intended for constants and tests.
func DecString(s string) Value {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic("num: DecString: " + s + ": " + err.Error())
	}

	return Dec(d)
}

// Rat returns a rational Value a/b. It panics when b == 0 (programmer error;
// runtime zero divisors are reported by the division choke point instead).
func Rat(a, b int64) Value {
	if b == 0 {
		panic("num: Rat: zero denominator")
	}

	return Value{kind: KindRational, rat: big.NewRat(a, b)}
}

// RatFrom returns a rational Value backed by r.
// The pointer is stored as-is; r must not be mutated afterwards.
func RatFrom(r *big.Rat) Value { return Value{kind: KindRational, rat: r} }

// Kind reports which arm of the union is populated.
func (v Value) Kind() Kind { return v.kind }

// Decimal returns the decimal arm, or nil when v is not KindDecimal.
func (v Value) Decimal() *apd.Decimal { return v.dec }

// Rational returns the rational arm, or nil when v is not KindRational.
func (v Value) Rational() *big.Rat { return v.rat }

// IsExactInt reports whether v carries zero fractional component:
// every int; a float with no fractional part; a decimal equal to its
// integral value; a rational with denominator 1.
func (v Value) IsExactInt() bool {
	switch v.kind {
	case KindInt:
		return true
	case KindFloat:
		return !math.IsInf(v.f, 0) && !math.IsNaN(v.f) && math.Trunc(v.f) == v.f
	case KindDecimal:
		if v.dec == nil {
			return false
		}
		var integ, frac apd.Decimal
		v.dec.Modf(&integ, &frac)

		return frac.IsZero()
	case KindRational:
		return v.rat != nil && v.rat.IsInt()
	default:
		return false
	}
}

// Int64 extracts the exact integer form of v. The second result is false
// when v is not an exact integer or does not fit in an int64.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindFloat:
		if !v.IsExactInt() || v.f < math.MinInt64 || v.f >= math.MaxInt64 {
			return 0, false
		}

		return int64(v.f), true
	case KindDecimal:
		if v.dec == nil {
			return 0, false
		}
		i, err := v.dec.Int64()

		return i, err == nil
	case KindRational:
		if v.rat == nil || !v.rat.IsInt() || !v.rat.Num().IsInt64() {
			return 0, false
		}

		return v.rat.Num().Int64(), true
	default:
		return 0, false
	}
}

// Float64 converts v to its floating-point form. The second result is false
// when the conversion is not finite (decimal overflow, nil arm).
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	case KindDecimal:
		if v.dec == nil {
			return 0, false
		}
		f, err := v.dec.Float64()

		return f, err == nil && !math.IsInf(f, 0)
	case KindRational:
		if v.rat == nil {
			return 0, false
		}
		f, _ := v.rat.Float64()

		return f, !math.IsInf(f, 0)
	default:
		return 0, false
	}
}

// String renders v in its native representation. Used for debugging and as
// the positional part of stabilizer cache keys.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindDecimal:
		if v.dec == nil {
			return "<nil>"
		}

		return v.dec.String()
	case KindRational:
		if v.rat == nil {
			return "<nil>"
		}

		return v.rat.RatString()
	default:
		return "<invalid>"
	}
}
