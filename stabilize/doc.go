// Package stabilize provides opt-in memoization for pure functions plus the
// divide-by-zero translation policy ("stabilization").
//
// What:
//
//   - Wrap1..Wrap4 take a typed function returning (R, error) and return a
//     stabilized wrapper: successful results are cached in a TTL store
//     keyed by the rendered positional arguments; num.ErrDivideByZero is
//     translated into ErrStabilizationViolated with a fixed message; every
//     other error propagates unchanged and is never cached.
//   - Guard applies the same error translation standalone; the array
//     package uses it on its stabilized method paths.
//
// Cache policy:
//
//   - Keys are built from positional arguments only. Options captured in a
//     wrapped closure do not participate — two calls differing only in
//     captured options collide on the same key. This is documented
//     behavior, not an accident: give each configuration its own wrapper.
//   - Entries expire after DefaultTTL (override with WithTTL or
//     WithNoExpiration), so a wrapper's cache is bounded in time instead of
//     growing for the process lifetime.
//   - Each wrapper owns an independent, internally synchronized store; the
//     Hits/Misses counters are atomic. Wrappers are safe for concurrent use
//     when the wrapped function is.
//   - Do not wrap functions whose results depend on mutable external state:
//     the cache is never invalidated, only expired.
//
// Introspection: every wrapper reports Stabilized() == true and exposes
// Hits/Misses counters, which is also how tests observe that a repeated
// call was served from cache.
package stabilize
