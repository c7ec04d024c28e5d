package convolve

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/arloliu/piecewise/errs"
	"github.com/arloliu/piecewise/internal/options"
	"github.com/arloliu/piecewise/interval"
	"github.com/arloliu/piecewise/step"
)

// Knot is a breakpoint of a Polyline.
type Knot struct {
	T     float64
	Value float64
}

// Polyline is a continuous piecewise-linear function over one or more runs.
//
// Within a run the function interpolates linearly between consecutive knots.
// Runs are separated by gaps where the function is undefined. The type
// parameter is the domain and value type a resampled result will carry; the
// polyline itself is exact in float64.
type Polyline[N step.Number] struct {
	runs [][]Knot
}

// IsEmpty reports whether the polyline is defined nowhere.
func (p Polyline[N]) IsEmpty() bool {
	return len(p.runs) == 0
}

// Len returns the number of runs.
func (p Polyline[N]) Len() int {
	return len(p.runs)
}

// Runs yields a copy of each run's knots in ascending order.
func (p Polyline[N]) Runs() iter.Seq[[]Knot] {
	return func(yield func([]Knot) bool) {
		for _, run := range p.runs {
			if !yield(slices.Clone(run)) {
				return
			}
		}
	}
}

// ValueAt returns the exact value at t, or false when t falls in a gap.
func (p Polyline[N]) ValueAt(t float64) (float64, bool) {
	i := sort.Search(len(p.runs), func(i int) bool {
		run := p.runs[i]
		return run[len(run)-1].T >= t
	})
	if i == len(p.runs) || t < p.runs[i][0].T {
		return 0, false
	}

	run := p.runs[i]
	k := sort.Search(len(run), func(k int) bool { return run[k].T >= t })
	if run[k].T == t {
		return run[k].Value, true
	}

	return interpolate(run[k-1], run[k], t), true
}

// Integral returns the area under the polyline.
func (p Polyline[N]) Integral() float64 {
	var sum float64
	for _, run := range p.runs {
		for k := 1; k < len(run); k++ {
			sum += (run[k].T - run[k-1].T) * (run[k].Value + run[k-1].Value) / 2
		}
	}

	return sum
}

// String formats the knots as "t:value" pairs, with runs separated by "|".
func (p Polyline[N]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, run := range p.runs {
		if i > 0 {
			sb.WriteString(" | ")
		}
		for k, knot := range run {
			if k > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(knot.T, 'g', -1, 64))
			sb.WriteByte(':')
			sb.WriteString(strconv.FormatFloat(knot.Value, 'g', -1, 64))
		}
	}
	sb.WriteByte('}')

	return sb.String()
}

// Resample reduces the polyline to a piecewise-constant function.
//
// Every cell between consecutive knots, optionally split by WithSubdivisions,
// becomes one output segment valued by policy. Cells are half-open, except
// the last cell of each run which is closed. Adjacent cells with equal values
// (within WithTolerance) are merged unless WithCoalesce(false) is given.
//
// Returns errs.ErrInvalidResampling for an undefined policy and
// errs.ErrInvalidOption for a rejected option.
func (p Polyline[N]) Resample(policy Resampling, opts ...Option) (step.Piecewise[N, N], error) {
	if !policy.Valid() {
		return step.Piecewise[N, N]{}, fmt.Errorf("%w: %d", errs.ErrInvalidResampling, uint8(policy))
	}
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return step.Piecewise[N, N]{}, err
	}
	if p.IsEmpty() {
		return step.Piecewise[N, N]{}, nil
	}

	cells := 0
	for _, run := range p.runs {
		cells += (len(run) - 1) * cfg.subdivisions
	}
	out, err := step.NewBuilder[N, N](step.WithCapacity(cells))
	if err != nil {
		return step.Piecewise[N, N]{}, err
	}

	r := resampler[N]{
		out:    out,
		policy: policy,
		n:      cfg.subdivisions,
		toN:    converter[N](),
	}
	if cfg.coalesce {
		r.equal = func(x, y N) bool {
			return math.Abs(float64(x)-float64(y)) <= cfg.tolerance
		}
	}
	for _, run := range p.runs {
		if err := r.run(run); err != nil {
			return step.Piecewise[N, N]{}, err
		}
	}

	return out.Finish()
}

type resampler[N step.Number] struct {
	out    *step.Builder[N, N]
	policy Resampling
	n      int
	toN    func(float64) N
	equal  func(x, y N) bool

	// closed upper bound of the last cell pushed by the previous run
	end   N
	ended bool
}

type cell[N step.Number] struct {
	lo, hi, value N
	loKind        interval.Kind
}

func (r *resampler[N]) run(run []Knot) error {
	var (
		pending    cell[N]
		hasPending bool
	)

	lo, loKind := r.toN(run[0].T), interval.KindClosed
	if r.ended && lo <= r.end {
		// runs apart in float64 may touch once rounded to N
		lo, loKind = r.end, interval.KindOpen
	}
	for k := 1; k < len(run); k++ {
		a, b := run[k-1], run[k]
		for j := range r.n {
			ya := a.Value
			if j > 0 {
				f := float64(j) / float64(r.n)
				ya = a.Value + (b.Value-a.Value)*f
			}
			tb, yb := b.T, b.Value
			if j < r.n-1 {
				f := float64(j+1) / float64(r.n)
				tb, yb = a.T+(b.T-a.T)*f, a.Value+(b.Value-a.Value)*f
			}

			hi := r.toN(tb)
			if hi <= lo {
				// collapsed by rounding
				continue
			}

			if hasPending {
				if err := r.push(interval.New(pending.lo, pending.loKind, pending.hi, interval.KindOpen), pending.value); err != nil {
					return err
				}
			}
			pending = cell[N]{lo: lo, hi: hi, value: r.toN(r.policy.sample(ya, yb)), loKind: loKind}
			hasPending = true
			lo, loKind = hi, interval.KindClosed
		}
	}

	if !hasPending {
		return nil
	}

	r.end, r.ended = pending.hi, true

	return r.push(interval.New(pending.lo, pending.loKind, pending.hi, interval.KindClosed), pending.value)
}

func (r *resampler[N]) push(d interval.Interval[N], v N) error {
	if r.equal == nil {
		return r.out.Push(step.NewSegment(d, v))
	}

	return r.out.PushCoalesce(step.NewSegment(d, v), r.equal)
}

// converter returns the float64 to N conversion used for resampled bounds
// and values: rounding for integer types, plain conversion for floats.
func converter[N step.Number]() func(float64) N {
	half := 0.5
	if N(half) == 0 {
		return func(x float64) N { return N(math.Round(x)) }
	}

	return func(x float64) N { return N(x) }
}

func interpolate(a, b Knot, t float64) float64 {
	return a.Value + (b.Value-a.Value)*(t-a.T)/(b.T-a.T)
}
