package step

import "golang.org/x/exp/constraints"

// Number is the capability bundle required by arithmetic operators and by
// convolution: values that support +, -, * and / and convert to float64.
type Number interface {
	constraints.Integer | constraints.Float
}
