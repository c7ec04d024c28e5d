package convolve

import "strings"

// Resampling selects how each output cell of a Polyline is reduced to a
// single value. The zero value is not a valid policy.
type Resampling uint8

const (
	// ResampleLeft takes the value at the cell's left end.
	ResampleLeft Resampling = iota + 1
	// ResampleRight takes the value at the cell's right end.
	ResampleRight
	// ResampleMidpoint takes the value at the cell's centre, which equals the
	// exact mean of the linear piece over the cell.
	ResampleMidpoint
	// ResampleMin takes the smaller end value, a lower envelope.
	ResampleMin
	// ResampleMax takes the larger end value, an upper envelope.
	ResampleMax
)

var resamplingNames = map[Resampling]string{
	ResampleLeft:     "left",
	ResampleRight:    "right",
	ResampleMidpoint: "midpoint",
	ResampleMin:      "min",
	ResampleMax:      "max",
}

// String returns the policy name.
func (r Resampling) String() string {
	if name, ok := resamplingNames[r]; ok {
		return name
	}

	return "unknown"
}

// Valid reports whether r is one of the defined policies.
func (r Resampling) Valid() bool {
	_, ok := resamplingNames[r]
	return ok
}

var resamplingFromString = map[string]Resampling{
	"left":     ResampleLeft,
	"right":    ResampleRight,
	"midpoint": ResampleMidpoint,
	"min":      ResampleMin,
	"max":      ResampleMax,
}

// ResamplingFromString returns the policy with the given name, ignoring case.
// Unknown names return the invalid zero value.
func ResamplingFromString(name string) Resampling {
	return resamplingFromString[strings.ToLower(name)]
}

// sample reduces the linear piece running from ya to yb over one cell.
func (r Resampling) sample(ya, yb float64) float64 {
	switch r {
	case ResampleLeft:
		return ya
	case ResampleRight:
		return yb
	case ResampleMin:
		return min(ya, yb)
	case ResampleMax:
		return max(ya, yb)
	default:
		return (ya + yb) / 2
	}
}
