// Package convolve computes the convolution of two finite-support
// piecewise-constant functions.
//
// The convolution of two step functions is continuous and piecewise linear:
// every pair of segments contributes a trapezoid over the Minkowski sum of
// their domains, rising from zero to a plateau of va * vb * min(la, lb) and
// falling back to zero. Contributions are superposed on the union of all
// pair breakpoints.
//
// # Exact and Resampled Results
//
// Linear returns the exact accumulation as a Polyline. Resample turns a
// Polyline back into a step.Piecewise under a caller-chosen policy:
//
//	line, err := convolve.Linear(a, b)
//	if err != nil {
//	    return err
//	}
//	fn, err := line.Resample(convolve.ResampleMidpoint, convolve.WithSubdivisions(4))
//
// Convolve does both in one call. Resampling is lossy, so the policy is a
// required argument; the zero Resampling is rejected with
// errs.ErrInvalidResampling.
//
// # Domain
//
// Every segment of both inputs must be bounded on both sides, otherwise
// errs.ErrUnboundedDomain is returned. Boundary kinds do not affect the
// result, since the integral ignores endpoints. Zero-length segments carry no
// mass and are skipped.
//
// The result is defined over the union of the pairwise Minkowski sums; a
// point outside every sum is a gap, not a zero. Arithmetic is carried out in
// float64. For integer types, resampled bounds and values are rounded to the
// nearest integer and cells that collapse to a point are dropped.
package convolve
