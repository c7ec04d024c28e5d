package step

import (
	"fmt"

	"github.com/arloliu/piecewise/errs"
	"github.com/arloliu/piecewise/internal/options"
)

// BuilderOption configures a Builder or SmallBuilder.
type BuilderOption = options.Option[*builderConfig]

type builderConfig struct {
	capacity int
}

// WithCapacity sets the segment capacity.
//
// For a Builder it is a preallocation hint: pushing up to n segments never
// grows the storage. If Finish finds more than a quarter of it unused, the
// segments are copied into storage of exactly their count. For a SmallBuilder it is the inline limit, which
// must be between 1 and SmallCapacity.
func WithCapacity(n int) BuilderOption {
	return options.New(func(c *builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: negative capacity %d", errs.ErrInvalidOption, n)
		}
		c.capacity = n

		return nil
	})
}
