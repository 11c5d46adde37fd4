/*
 * types.go, part of poreprofile.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package optim implements the two-phase maximizer of spec.md §4.2:
// simulated annealing seeding a Nelder-Mead simplex, over a real vector
// space given an opaque cost oracle. Grounded on
// original_source/src/optim/simulated_annealing_module.cpp for the
// annealing phase's state machine and acceptance rule.
package optim

import "math"

// ObjectiveFunc is the cost oracle the optimizer maximizes. It takes no
// context and is assumed to be pure and side-effect free, since both the
// annealing and simplex phases may evaluate it many times per point and
// cache values between iterations.
type ObjectiveFunc func(x []float64) float64

// Point is a location in optimization space together with its cost.
type Point struct {
	X    []float64
	Cost float64
}

func clonePoint(p Point) Point {
	return Point{X: append([]float64(nil), p.X...), Cost: p.Cost}
}

// NegInf is the sentinel cost returned by a failed optimization, per
// spec.md §4.2 ("the caller treats -Inf as a failed probe step").
var NegInf = math.Inf(-1)
