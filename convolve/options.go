package convolve

import (
	"fmt"
	"math"

	"github.com/arloliu/piecewise/errs"
	"github.com/arloliu/piecewise/internal/options"
)

// Option configures Resample and Convolve.
type Option = options.Option[*config]

type config struct {
	subdivisions int
	tolerance    float64
	coalesce     bool
}

func defaultConfig() *config {
	return &config{subdivisions: 1, coalesce: true}
}

// WithSubdivisions splits every breakpoint cell into n equal sub-cells before
// sampling. Larger n tracks the linear result more closely at the cost of
// more output segments. n must be at least 1; the default is 1.
func WithSubdivisions(n int) Option {
	return options.New(func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: subdivisions must be at least 1, got %d", errs.ErrInvalidOption, n)
		}
		c.subdivisions = n

		return nil
	})
}

// WithTolerance merges adjacent output cells whose values differ by at most
// eps. The merged segment keeps the value of its first cell. The default, 0,
// merges exactly equal values only.
func WithTolerance(eps float64) Option {
	return options.New(func(c *config) error {
		if eps < 0 || math.IsNaN(eps) {
			return fmt.Errorf("%w: tolerance must be a non-negative number, got %v", errs.ErrInvalidOption, eps)
		}
		c.tolerance = eps

		return nil
	})
}

// WithCoalesce controls whether adjacent output cells with equal values are
// merged. It is enabled by default; disabling it keeps one output segment per
// cell, which preserves the sampling grid.
func WithCoalesce(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.coalesce = enabled
	})
}
