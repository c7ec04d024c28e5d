// Package options holds the functional-option plumbing behind the segment
// builders and convolution resampling.
//
// Each public option (step.WithCapacity, convolve.WithSubdivisions and the
// like) is an Option over a pointer to its package's private config. The
// constructor that receives the options fills the config with defaults, runs
// Apply over it and returns the first rejection as is, so callers see one
// errs.ErrInvalidOption before any storage is reserved.
package options

// Option sets one field of a config T and may reject the value it carries.
type Option[T any] interface {
	apply(T) error
}

// setter is the only Option implementation.
type setter[T any] func(T) error

func (s setter[T]) apply(cfg T) error {
	return s(cfg)
}

// New wraps a validating setter, e.g. one that rejects a negative segment
// capacity or a zero subdivision count.
func New[T any](set func(T) error) Option[T] {
	return setter[T](set)
}

// NoError wraps a setter that accepts every value, e.g. a toggle.
func NoError[T any](set func(T)) Option[T] {
	return setter[T](func(cfg T) error {
		set(cfg)
		return nil
	})
}

// Apply runs opts against cfg in the order given and stops at the first
// rejection; settings applied before it stay in cfg. Nil options are
// skipped so callers can pass optional settings unconditionally.
func Apply[T any](cfg T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(cfg); err != nil {
			return err
		}
	}

	return nil
}
