package stabilize

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/katalvlaran/decmath/num"
)

// DefaultTTL bounds how long a cached result survives, keeping the memory
// of long-lived wrappers bounded.
const DefaultTTL = 5 * time.Minute

// keySep joins rendered positional arguments in cache keys.
const keySep = "\x1f"

// Option tunes a wrapper's cache at construction time.
type Option func(*config)

type config struct {
	ttl time.Duration
}

// WithTTL sets the cache entry lifetime. Panics on non-positive d
// (programmer error; use WithNoExpiration for an unbounded lifetime).
func WithTTL(d time.Duration) Option {
	if d <= 0 {
		panic("stabilize: WithTTL: duration must be positive")
	}

	return func(c *config) { c.ttl = d }
}

// WithNoExpiration keeps cached results for the wrapper's whole lifetime.
func WithNoExpiration() Option {
	return func(c *config) { c.ttl = cache.NoExpiration }
}

func gatherConfig(opts ...Option) config {
	c := config{ttl: DefaultTTL}
	for _, set := range opts {
		set(&c)
	}

	return c
}

// Guard translates num.ErrDivideByZero into ErrStabilizationViolated and
// passes every other error (including nil) through unchanged.
func Guard(err error) error {
	if errors.Is(err, num.ErrDivideByZero) {
		return ErrStabilizationViolated
	}

	return err
}

// core carries the cache and counters shared by all wrapper arities.
type core struct {
	store  *cache.Cache
	hits   atomic.Uint64
	misses atomic.Uint64
	ttl    time.Duration
}

func newCore(cfg config) *core {
	return &core{store: cache.New(cfg.ttl, cfg.ttl), ttl: cfg.ttl}
}

// Stabilized marks the wrapper for introspection.
func (c *core) Stabilized() bool { return true }

// Hits reports how many calls were served from cache.
func (c *core) Hits() uint64 { return c.hits.Load() }

// Misses reports how many calls invoked the wrapped function.
func (c *core) Misses() uint64 { return c.misses.Load() }

// call runs the lookup/compute/store cycle for an already-rendered key.
func call[R any](c *core, key string, fn func() (R, error)) (R, error) {
	if v, ok := c.store.Get(key); ok {
		c.hits.Add(1)

		return v.(R), nil
	}
	c.misses.Add(1)
	r, err := fn()
	if err != nil {
		var zero R

		return zero, Guard(err)
	}
	c.store.Set(key, r, c.ttl)

	return r, nil
}

// renderKey joins the positional arguments into a cache key.
func renderKey(args ...any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}

	return strings.Join(parts, keySep)
}

// Func1 is a stabilized one-argument function.
type Func1[A, R any] struct {
	*core
	fn func(A) (R, error)
}

// Wrap1 stabilizes a one-argument function.
func Wrap1[A, R any](fn func(A) (R, error), opts ...Option) *Func1[A, R] {
	return &Func1[A, R]{core: newCore(gatherConfig(opts...)), fn: fn}
}

// Call invokes the wrapped function, serving repeats from cache.
func (s *Func1[A, R]) Call(a A) (R, error) {
	return call(s.core, renderKey(a), func() (R, error) { return s.fn(a) })
}

// Func2 is a stabilized two-argument function.
type Func2[A, B, R any] struct {
	*core
	fn func(A, B) (R, error)
}

// Wrap2 stabilizes a two-argument function.
func Wrap2[A, B, R any](fn func(A, B) (R, error), opts ...Option) *Func2[A, B, R] {
	return &Func2[A, B, R]{core: newCore(gatherConfig(opts...)), fn: fn}
}

// Call invokes the wrapped function, serving repeats from cache.
func (s *Func2[A, B, R]) Call(a A, b B) (R, error) {
	return call(s.core, renderKey(a, b), func() (R, error) { return s.fn(a, b) })
}

// Func3 is a stabilized three-argument function.
type Func3[A, B, C, R any] struct {
	*core
	fn func(A, B, C) (R, error)
}

// Wrap3 stabilizes a three-argument function.
func Wrap3[A, B, C, R any](fn func(A, B, C) (R, error), opts ...Option) *Func3[A, B, C, R] {
	return &Func3[A, B, C, R]{core: newCore(gatherConfig(opts...)), fn: fn}
}

// Call invokes the wrapped function, serving repeats from cache.
func (s *Func3[A, B, C, R]) Call(a A, b B, c C) (R, error) {
	return call(s.core, renderKey(a, b, c), func() (R, error) { return s.fn(a, b, c) })
}

// Func4 is a stabilized four-argument function.
type Func4[A, B, C, D, R any] struct {
	*core
	fn func(A, B, C, D) (R, error)
}

// Wrap4 stabilizes a four-argument function (Distance2D-shaped signatures).
func Wrap4[A, B, C, D, R any](fn func(A, B, C, D) (R, error), opts ...Option) *Func4[A, B, C, D, R] {
	return &Func4[A, B, C, D, R]{core: newCore(gatherConfig(opts...)), fn: fn}
}

// Call invokes the wrapped function, serving repeats from cache.
func (s *Func4[A, B, C, D, R]) Call(a A, b B, c C, d D) (R, error) {
	return call(s.core, renderKey(a, b, c, d), func() (R, error) { return s.fn(a, b, c, d) })
}
