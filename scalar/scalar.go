package scalar

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmath/coerce"
	"github.com/katalvlaran/decmath/num"
)

// Algorithm tuning (single source of truth).
const (
	// newtonIterations is the fixed iteration count for Sqrt and Cbrt.
	newtonIterations = 30

	// maxSeriesTerms caps every series loop. The ln series is
	// argument-reduced and the cutoff fires within a few hundred terms;
	// the trig series have no range reduction, and for enormous |x| the
	// cap turns a divergent term walk into ErrNoConvergence instead of
	// a spin.
	maxSeriesTerms = 100_000
)

// Shared read-only decimal constants. Never mutated: every context
// operation allocates a fresh result.
var (
	decPi      = mustDec("3.1415926535897932384626433832795028841971")
	decE       = mustDec("2.7182818284590452353602874713527")
	decOne     = mustDec("1")
	decTwo     = mustDec("2")
	decThree   = mustDec("3")
	decFour    = mustDec("4")
	decSix     = mustDec("6")
	decHundred = mustDec("100")
	decLn10    = mustDec("2.3025850929940456840179914546843642076011014886287729760333")
	decTol     = mustDec("1e-40")
)

// mustDec parses a decimal literal, panicking on malformed source constants.
func mustDec(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic("scalar: bad decimal literal " + s + ": " + err.Error())
	}

	return d
}

// Pi returns a fresh copy of π (40 fractional digits).
func Pi() num.Value { return num.Dec(new(apd.Decimal).Set(decPi)) }

// E returns a fresh copy of Euler's number e (31 fractional digits).
func E() num.Value { return num.Dec(new(apd.Decimal).Set(decE)) }

// finish runs a computed decimal through the presentation policy.
func finish(d *apd.Decimal, opts []coerce.Option) num.Value {
	return coerce.Normalize(num.Dec(d), coerce.GatherPolicy(opts...))
}

// absCmp reports whether |d| > limit.
func absCmp(d, limit *apd.Decimal) bool {
	return new(apd.Decimal).Abs(d).Cmp(limit) > 0
}

// SafeDiv divides a by b at context precision. It is the public face of the
// division choke point: every division in decmath reports a zero divisor as
// num.ErrDivideByZero.
func SafeDiv(ctx *num.Context, a, b num.Value, opts ...coerce.Option) (num.Value, error) {
	da, err := ctx.ToDecimal(a)
	if err != nil {
		return num.Value{}, fmt.Errorf("SafeDiv: %w", err)
	}
	db, err := ctx.ToDecimal(b)
	if err != nil {
		return num.Value{}, fmt.Errorf("SafeDiv: %w", err)
	}
	q, err := ctx.Quo(da, db)
	if err != nil {
		return num.Value{}, err
	}

	return finish(q, opts), nil
}
