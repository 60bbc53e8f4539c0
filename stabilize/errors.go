package stabilize

import "errors"

// ErrStabilizationViolated replaces num.ErrDivideByZero inside stabilized
// calls. The message is fixed and user-facing.
var ErrStabilizationViolated = errors.New("stabilize: cannot divide by zero, please change the denominator")
