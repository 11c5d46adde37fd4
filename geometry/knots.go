/*
 * knots.go, part of poreprofile.
 *
 * B-spline knot-vector construction. Grounded on the Cox-de Boor recurrence
 * described in spec.md §3/§4.3 and on the classic de Boor global-interpolation
 * averaging scheme (Piegl & Tiller, "The NURBS Book", eq. 9.8), since neither
 * the teacher nor the rest of the retrieval pack carries a B-spline fitting
 * routine of its own (gotetra's interpolate.Spline is a natural cubic
 * spline in (x,y) table form, not a knot/control-point B-spline).
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package geometry

import pp "github.com/rmera/poreprofile"

// ClampedInterpolationKnots builds the knot vector for a degree-d clamped
// B-spline that interpolates len(params) data points at the given
// strictly increasing parameter values. The returned vector has
// len(params)+degree+1 entries: the first and last degree+1 entries are
// repeated (clamped), and the interior knots are the de Boor averages of
// degree consecutive parameters.
func ClampedInterpolationKnots(params []float64, degree int) ([]float64, error) {
	n := len(params)
	if n < degree+1 {
		return nil, pp.NewError(pp.KindNumeric, "geometry: need at least %d samples for a degree-%d spline, got %d", degree+1, degree, n)
	}
	for i := 1; i < n; i++ {
		if !(params[i] > params[i-1]) {
			return nil, pp.NewError(pp.KindData, "geometry: spline parameters must be strictly increasing (index %d)", i)
		}
	}

	knots := make([]float64, n+degree+1)
	for i := 0; i <= degree; i++ {
		knots[i] = params[0]
		knots[len(knots)-1-i] = params[n-1]
	}
	// interior knots via sliding-window average of degree consecutive params
	for j := 1; j <= n-degree-1; j++ {
		sum := 0.0
		for k := j; k < j+degree; k++ {
			sum += params[k]
		}
		knots[j+degree] = sum / float64(degree)
	}
	return knots, nil
}

// ExpandClampedKnots rebuilds a full clamped knot vector (length
// len(unique)+degree-1+degree+1) from its unique values, the inverse of
// UniqueKnots for the clamped, simple-interior-knot vectors this package
// always produces. Used to reconstruct a serialized spline from its
// poreRadiusUniqueKnots/centreLineUniqueKnots descriptor (spec.md §6).
func ExpandClampedKnots(unique []float64, degree int) []float64 {
	if len(unique) < 2 {
		return append([]float64(nil), unique...)
	}
	out := make([]float64, 0, len(unique)+2*degree)
	for i := 0; i <= degree; i++ {
		out = append(out, unique[0])
	}
	out = append(out, unique[1:len(unique)-1]...)
	for i := 0; i <= degree; i++ {
		out = append(out, unique[len(unique)-1])
	}
	return out
}

// UniqueKnots collapses a knot vector to its distinct values, in order,
// used by callers that serialize a spline descriptor or need the composite
// Simpson integration subintervals of §4.3 ("unique knot intervals").
func UniqueKnots(knots []float64) []float64 {
	if len(knots) == 0 {
		return nil
	}
	out := []float64{knots[0]}
	for _, k := range knots[1:] {
		if k > out[len(out)-1] {
			out = append(out, k)
		}
	}
	return out
}
