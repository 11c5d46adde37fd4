/*
 * quadrature.go, part of poreprofile.
 *
 * Adaptive Simpson quadrature (used for arc-length integration, spec.md
 * §4.3) and composite Simpson over a set of breakpoints (used for pathway
 * volume integration over "unique knot intervals", spec.md §4.3). Hand
 * rolled per spec.md §9 ("the core requires only... "); no quadrature
 * library is used.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package geometry

import "math"

const defaultQuadTol = 1e-6

// AdaptiveSimpson integrates f over [a,b] to within tol using recursive
// Simpson refinement, halving the interval wherever the estimate disagrees
// with the coarse one by more than tol.
func AdaptiveSimpson(f func(float64) float64, a, b, tol float64) float64 {
	if tol <= 0 {
		tol = defaultQuadTol
	}
	fa, fb, fm := f(a), f(b), f((a+b)/2)
	whole := simpson(a, b, fa, fm, fb)
	return adaptiveSimpsonRec(f, a, b, fa, fm, fb, whole, tol, 20)
}

func simpson(a, b, fa, fm, fb float64) float64 {
	return (b - a) / 6 * (fa + 4*fm + fb)
}

func adaptiveSimpsonRec(f func(float64) float64, a, b, fa, fm, fb, whole, tol float64, depth int) float64 {
	mid := (a + b) / 2
	lm := (a + mid) / 2
	rm := (mid + b) / 2
	flm, frm := f(lm), f(rm)
	left := simpson(a, mid, fa, flm, fm)
	right := simpson(mid, b, fm, frm, fb)
	if depth <= 0 || math.Abs(left+right-whole) <= 15*tol {
		return left + right + (left+right-whole)/15
	}
	return adaptiveSimpsonRec(f, a, mid, fa, flm, fm, left, tol/2, depth-1) +
		adaptiveSimpsonRec(f, mid, b, fm, frm, fb, right, tol/2, depth-1)
}

// CompositeSimpson integrates f over the breakpoints xs (strictly
// increasing, e.g. a spline's unique knots) by applying adaptive Simpson on
// each subinterval and summing.
func CompositeSimpson(f func(float64) float64, xs []float64, tol float64) float64 {
	var total float64
	for i := 1; i < len(xs); i++ {
		total += AdaptiveSimpson(f, xs[i-1], xs[i], tol)
	}
	return total
}
