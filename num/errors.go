package num

import "errors"

var (
	// ErrUnsupportedType indicates an input type that cannot be converted
	// to the internal decimal representation.
	ErrUnsupportedType = errors.New("num: unsupported input type")

	// ErrNilValue indicates a nil *apd.Decimal or *big.Rat input.
	ErrNilValue = errors.New("num: nil numeric input")

	// ErrDivideByZero is returned by the division choke point when the
	// divisor is zero. All division in decmath routes through it.
	ErrDivideByZero = errors.New("num: cannot divide by zero")

	// ErrDomain indicates an argument outside a function's mathematical
	// domain (negative factorial, negative square root, non-positive log).
	ErrDomain = errors.New("num: argument outside function domain")

	// ErrBadPrecision indicates a context precision below MinPrecision.
	ErrBadPrecision = errors.New("num: precision below supported minimum")
)
