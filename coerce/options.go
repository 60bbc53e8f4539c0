package coerce

// Option mutates a Policy. Every numeric entry point in decmath accepts
// ...Option; last-writer-wins, resolved by GatherPolicy.
type Option func(*Policy)

// AsInt requests integer presentation for exactly-integral results.
func AsInt() Option {
	return func(p *Policy) { p.Target = TargetInt }
}

// AsFloat requests floating-point presentation unconditionally.
func AsFloat() Option {
	return func(p *Policy) { p.Target = TargetFloat }
}

// When attaches a predicate gating the conversion. A nil cond restores the
// default allow-everything behavior.
func When(cond Predicate) Option {
	return func(p *Policy) { p.Cond = cond }
}

// WithPolicy replaces the whole policy at once. Useful when a container
// captured a Policy at construction and threads it through its operations.
func WithPolicy(p Policy) Option {
	return func(dst *Policy) { *dst = p }
}

// GatherPolicy resolves option setters against the zero Policy
// (no target, allow-everything predicate), applying them in order.
func GatherPolicy(opts ...Option) Policy {
	var p Policy
	for _, set := range opts {
		set(&p)
	}

	return p
}
