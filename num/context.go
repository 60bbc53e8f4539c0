package num

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Working-precision policy (single source of truth).
const (
	// DefaultPrecision is the working precision in significant digits.
	// The series expansions in package scalar cut off at 1e-40, so the
	// default leaves ten guard digits beyond the cutoff.
	DefaultPrecision = 50

	// MinPrecision is the lowest precision a Context accepts. Below this
	// the 1e-40 series cutoff can never be reached and the expansions in
	// package scalar would stop converging meaningfully.
	MinPrecision = 45
)

// Context carries the working precision for all decimal arithmetic.
// It is immutable after construction and safe for concurrent use.
type Context struct {
	prec uint32
	actx *apd.Context
}

// NewContext returns a Context computing with prec significant digits.
// Returns ErrBadPrecision when prec < MinPrecision.
func NewContext(prec uint32) (*Context, error) {
	if prec < MinPrecision {
		return nil, fmt.Errorf("NewContext: %d digits: %w", prec, ErrBadPrecision)
	}

	return &Context{prec: prec, actx: apd.BaseContext.WithPrecision(prec)}, nil
}

// DefaultContext returns a Context at DefaultPrecision.
func DefaultContext() *Context {
	c, err := NewContext(DefaultPrecision)
	if err != nil {
		panic("num: DefaultContext: " + err.Error())
	}

	return c
}

// Precision reports the working precision in significant digits.
func (c *Context) Precision() uint32 { return c.prec }

// ToDecimal normalizes v to the decimal representation. A rational a/b
// converts as Dec(a)/Dec(b) at context precision.
// Returns ErrNilValue for nil decimal/rational arms.
func (c *Context) ToDecimal(v Value) (*apd.Decimal, error) {
	switch v.kind {
	case KindInt:
		return apd.New(v.i, 0), nil
	case KindFloat:
		d := new(apd.Decimal)
		if _, err := d.SetFloat64(v.f); err != nil {
			return nil, fmt.Errorf("ToDecimal: %w", ErrUnsupportedType)
		}

		return d, nil
	case KindDecimal:
		if v.dec == nil {
			return nil, fmt.Errorf("ToDecimal: %w", ErrNilValue)
		}

		return new(apd.Decimal).Set(v.dec), nil
	case KindRational:
		if v.rat == nil {
			return nil, fmt.Errorf("ToDecimal: %w", ErrNilValue)
		}
		n, _, err := apd.NewFromString(v.rat.Num().String())
		if err != nil {
			return nil, fmt.Errorf("ToDecimal: rational numerator: %w", err)
		}
		d, _, err := apd.NewFromString(v.rat.Denom().String())
		if err != nil {
			return nil, fmt.Errorf("ToDecimal: rational denominator: %w", err)
		}

		return c.Quo(n, d)
	default:
		return nil, fmt.Errorf("ToDecimal: %w", ErrUnsupportedType)
	}
}

// Add returns x + y at context precision.
func (c *Context) Add(x, y *apd.Decimal) (*apd.Decimal, error) {
	z := new(apd.Decimal)
	if _, err := c.actx.Add(z, x, y); err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}

	return z, nil
}

// Sub returns x - y at context precision.
func (c *Context) Sub(x, y *apd.Decimal) (*apd.Decimal, error) {
	z := new(apd.Decimal)
	if _, err := c.actx.Sub(z, x, y); err != nil {
		return nil, fmt.Errorf("Sub: %w", err)
	}

	return z, nil
}

// Mul returns x * y at context precision.
func (c *Context) Mul(x, y *apd.Decimal) (*apd.Decimal, error) {
	z := new(apd.Decimal)
	if _, err := c.actx.Mul(z, x, y); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}

	return z, nil
}

// Quo returns x / y at context precision. This is the division choke point:
// every division in decmath routes through it, and a zero divisor is
// reported as ErrDivideByZero before apd ever sees it.
func (c *Context) Quo(x, y *apd.Decimal) (*apd.Decimal, error) {
	if y.IsZero() {
		return nil, ErrDivideByZero
	}
	z := new(apd.Decimal)
	if _, err := c.actx.Quo(z, x, y); err != nil {
		return nil, fmt.Errorf("Quo: %w", err)
	}

	return z, nil
}

// Pow returns x ** y at context precision. Used only where a fractional
// exponent is meaningful (compound interest); integer powers go through
// scalar.Power's repeated multiplication.
func (c *Context) Pow(x, y *apd.Decimal) (*apd.Decimal, error) {
	z := new(apd.Decimal)
	if _, err := c.actx.Pow(z, x, y); err != nil {
		return nil, fmt.Errorf("Pow: %w", err)
	}

	return z, nil
}
