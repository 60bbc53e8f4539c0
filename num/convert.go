package num

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cast"
)

// FromAny converts a loosely-typed numeric input into a Value.
//
// Accepted: Value (passthrough), *apd.Decimal, *big.Rat, decimal strings,
// float32/float64, and every int/uint width. Anything else — including bools,
// which cast would happily turn into 0/1 — fails with ErrUnsupportedType.
// Floats are handled before the integer fallback so that a fractional float
// is never silently truncated.
// Complexity: O(1), plus parsing for string inputs.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Value{}, fmt.Errorf("FromAny: %w", ErrNilValue)
	case Value:
		return t, nil
	case *apd.Decimal:
		if t == nil {
			return Value{}, fmt.Errorf("FromAny: %w", ErrNilValue)
		}

		return Dec(t), nil
	case *big.Rat:
		if t == nil {
			return Value{}, fmt.Errorf("FromAny: %w", ErrNilValue)
		}

		return RatFrom(t), nil
	case string:
		d, _, err := apd.NewFromString(t)
		if err != nil {
			return Value{}, fmt.Errorf("FromAny: %q: %w", t, ErrUnsupportedType)
		}

		return Dec(d), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case bool:
		return Value{}, fmt.Errorf("FromAny: bool: %w", ErrUnsupportedType)
	case uint64:
		// cast narrows uint64 silently; route the upper half through a
		// decimal to keep the value exact.
		if t > math.MaxInt64 {
			d, _, err := apd.NewFromString(strconv.FormatUint(t, 10))
			if err != nil {
				return Value{}, fmt.Errorf("FromAny: uint64: %w", ErrUnsupportedType)
			}

			return Dec(d), nil
		}

		return Int(int64(t)), nil
	}

	i, err := cast.ToInt64E(x)
	if err != nil {
		return Value{}, fmt.Errorf("FromAny: %T: %w", x, ErrUnsupportedType)
	}

	return Int(i), nil
}
