package convolve

import (
	"fmt"
	"sort"

	"github.com/arloliu/piecewise/errs"
	"github.com/arloliu/piecewise/internal/pool"
	"github.com/arloliu/piecewise/interval"
	"github.com/arloliu/piecewise/step"
)

// Convolve computes the convolution of a and b and resamples it with policy.
// It is Linear followed by Polyline.Resample.
//
// Returns errs.ErrInvalidResampling for an undefined policy, before any work
// is done, and errs.ErrUnboundedDomain if a segment of either input is
// unbounded.
func Convolve[N step.Number, RA step.Reader[N, N], RB step.Reader[N, N]](a RA, b RB, policy Resampling, opts ...Option) (step.Piecewise[N, N], error) {
	if !policy.Valid() {
		return step.Piecewise[N, N]{}, fmt.Errorf("%w: %d", errs.ErrInvalidResampling, uint8(policy))
	}

	line, err := Linear(a, b)
	if err != nil {
		return step.Piecewise[N, N]{}, err
	}

	return line.Resample(policy, opts...)
}

// Linear computes the exact convolution of a and b.
//
// Each pair of segments with positive lengths la and lb contributes a
// trapezoid starting at the sum of their lower bounds s. Its slope changes
// by +c at s, by -c at s+min(la, lb) and s+max(la, lb), and by +c at
// s+la+lb, where c = va*vb. The events of all pairs are sorted once and
// swept, so the cost is O(|a||b| log(|a||b|)).
//
// An empty input yields an empty Polyline.
func Linear[N step.Number, RA step.Reader[N, N], RB step.Reader[N, N]](a RA, b RB) (Polyline[N], error) {
	if err := checkBounded(a, "left"); err != nil {
		return Polyline[N]{}, err
	}
	if err := checkBounded(b, "right"); err != nil {
		return Polyline[N]{}, err
	}

	na, nb := a.Len(), b.Len()
	if na == 0 || nb == 0 {
		return Polyline[N]{}, nil
	}

	size := 4 * na * nb
	pos, cleanupPos := pool.GetFloat64Slice(size)
	defer cleanupPos()
	slope, cleanupSlope := pool.GetFloat64Slice(size)
	defer cleanupSlope()
	cover, cleanupCover := pool.GetFloat64Slice(size)
	defer cleanupCover()

	ev := events{pos: pos[:0], slope: slope[:0], cover: cover[:0]}
	for i := range na {
		sa, _ := a.At(i)
		loA, la := span(sa.Domain)
		if la == 0 {
			continue
		}
		for j := range nb {
			sb, _ := b.At(j)
			loB, lb := span(sb.Domain)
			if lb == 0 {
				continue
			}
			ev.add(loA+loB, la, lb, float64(sa.Value)*float64(sb.Value))
		}
	}
	if ev.Len() == 0 {
		return Polyline[N]{}, nil
	}

	sort.Sort(&ev)

	return Polyline[N]{runs: ev.sweep()}, nil
}

func checkBounded[N step.Number, R step.Reader[N, N]](r R, side string) error {
	for i := range r.Len() {
		s, _ := r.At(i)
		if !s.Domain.IsBounded() {
			return fmt.Errorf("%w: segment %d %s of the %s operand", errs.ErrUnboundedDomain, i, s.Domain, side)
		}
	}

	return nil
}

// span returns the lower bound and length of a bounded interval.
func span[N step.Number](d interval.Interval[N]) (float64, float64) {
	lo, _ := d.Lower()
	hi, _ := d.Upper()

	return float64(lo), float64(hi) - float64(lo)
}

// events holds slope and coverage changes as parallel slices sorted by
// position. A coverage of zero separates runs.
type events struct {
	pos   []float64
	slope []float64
	cover []float64
}

func (e *events) add(s, la, lb, c float64) {
	short, long := min(la, lb), max(la, lb)
	e.push(s, c, 1)
	e.push(s+short, -c, 0)
	e.push(s+long, -c, 0)
	e.push(s+la+lb, c, -1)
}

func (e *events) push(pos, slope, cover float64) {
	e.pos = append(e.pos, pos)
	e.slope = append(e.slope, slope)
	e.cover = append(e.cover, cover)
}

func (e *events) Len() int           { return len(e.pos) }
func (e *events) Less(i, j int) bool { return e.pos[i] < e.pos[j] }
func (e *events) Swap(i, j int) {
	e.pos[i], e.pos[j] = e.pos[j], e.pos[i]
	e.slope[i], e.slope[j] = e.slope[j], e.slope[i]
	e.cover[i], e.cover[j] = e.cover[j], e.cover[i]
}

// sweep integrates the sorted events into runs of knots. All events at the
// same position are applied together, so touching supports form one run.
func (e *events) sweep() [][]Knot {
	var (
		runs        [][]Knot
		run         []Knot
		x, y, slope float64
		cover       int
	)

	x = e.pos[0]
	for i := 0; i < len(e.pos); {
		t := e.pos[i]
		y += slope * (t - x)
		x = t

		covered := cover > 0
		for ; i < len(e.pos) && e.pos[i] == t; i++ {
			slope += e.slope[i]
			cover += int(e.cover[i])
		}

		switch {
		case !covered:
			run = []Knot{{T: t}}
			y = 0
		case cover == 0:
			// every trapezoid has returned to zero; drop accumulated drift
			runs = append(runs, append(run, Knot{T: t}))
			run = nil
			y, slope = 0, 0
		default:
			run = append(run, Knot{T: t, Value: y})
		}
	}

	return runs
}
