/*
 * optimizer.go, part of poreprofile.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package optim

// Params bundles the annealing and simplex phases' configuration, so a
// caller (pathfinder.Finder) holds one value per spec.md's "explicit
// per-component configuration value, constructed once from the CLI and
// passed by reference" design note.
type Params struct {
	Anneal  AnnealParams
	Simplex SimplexParams
}

// Maximize runs the two-phase maximizer of spec.md §4.2: simulated
// annealing seeds the Nelder-Mead simplex's initial best vertex
// (p.Anneal.MaxIter == 0 skips annealing, landing x0 straight into the
// simplex). If annealing ends without a finite cost, Nelder-Mead runs from
// x0. The returned ok is false only when neither phase produced a finite
// cost, in which case Point.Cost is not finite (e.g. NegInf).
func Maximize(obj ObjectiveFunc, x0 []float64, p Params) (Point, bool) {
	seed, annealed := Anneal(obj, x0, p.Anneal)
	start := x0
	if annealed {
		start = seed.X
	}
	best := NelderMead(obj, start, p.Simplex)
	return best, annealed || isFinite(best.Cost)
}
