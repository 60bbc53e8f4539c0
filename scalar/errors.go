package scalar

import "errors"

// ErrNoConvergence indicates a series expansion exhausted its term budget
// before the term magnitude reached the cutoff. In practice this only
// happens for trigonometric inputs of enormous magnitude, where the missing
// range reduction makes the Taylor terms grow before they shrink.
var ErrNoConvergence = errors.New("scalar: series did not converge within term budget")
