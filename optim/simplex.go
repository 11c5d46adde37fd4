/*
 * simplex.go, part of poreprofile.
 *
 * Nelder-Mead simplex maximizer, specialized to low-dimensional spaces
 * (the in-plane optimizer of spec.md §4.2 only ever runs it over R^2).
 * Standard reflection/expansion/contraction/shrink coefficients per
 * Nelder & Mead (1965); the "maximizing variant" just flips the sign of
 * the cost comparisons rather than negating the oracle, so the returned
 * Point.Cost is in the oracle's own (maximized) units.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package optim

import "sort"

// SimplexParams configures the Nelder-Mead phase (spec.md §6
// nm-max-iter/nm-init-shift).
type SimplexParams struct {
	MaxIter   int
	InitShift float64
}

const (
	alphaReflect    = 1.0
	gammaExpand     = 2.0
	betaContract    = 0.5
	deltaShrink     = 0.5
)

// NelderMead maximizes obj starting from an initial simplex built from x0
// and x0 + shift*e_j for each basis vector e_j (spec.md §4.2). Returns the
// best vertex found.
func NelderMead(obj ObjectiveFunc, x0 []float64, p SimplexParams) Point {
	n := len(x0)
	simplex := make([]Point, n+1)
	simplex[0] = Point{X: append([]float64(nil), x0...), Cost: obj(x0)}
	for j := 0; j < n; j++ {
		x := append([]float64(nil), x0...)
		x[j] += p.InitShift
		simplex[j+1] = Point{X: x, Cost: obj(x)}
	}

	for iter := 0; iter < p.MaxIter; iter++ {
		sortDescending(simplex)
		best, worst := simplex[0], simplex[n]
		secondWorst := simplex[n-1]

		centroid := make([]float64, n)
		for i := 0; i <= n; i++ {
			if i == n {
				continue // exclude worst
			}
			for d := 0; d < n; d++ {
				centroid[d] += simplex[i].X[d] / float64(n)
			}
		}

		reflected := movePoint(centroid, worst.X, alphaReflect)
		reflectedCost := obj(reflected)

		switch {
		case reflectedCost > best.Cost:
			expanded := movePoint(centroid, worst.X, gammaExpand)
			expandedCost := obj(expanded)
			if expandedCost > reflectedCost {
				simplex[n] = Point{X: expanded, Cost: expandedCost}
			} else {
				simplex[n] = Point{X: reflected, Cost: reflectedCost}
			}
		case reflectedCost > secondWorst.Cost:
			simplex[n] = Point{X: reflected, Cost: reflectedCost}
		default:
			contracted := movePoint(centroid, worst.X, -betaContract)
			contractedCost := obj(contracted)
			if contractedCost > worst.Cost {
				simplex[n] = Point{X: contracted, Cost: contractedCost}
			} else {
				for i := 1; i <= n; i++ {
					x := make([]float64, n)
					for d := 0; d < n; d++ {
						x[d] = best.X[d] + deltaShrink*(simplex[i].X[d]-best.X[d])
					}
					simplex[i] = Point{X: x, Cost: obj(x)}
				}
			}
		}
	}

	sortDescending(simplex)
	return clonePoint(simplex[0])
}

// movePoint returns centroid + factor*(centroid-worst), the shared formula
// behind reflection (factor=alpha), expansion (factor=gamma) and
// contraction (factor=-beta) once the move is written as a displacement
// from the worst vertex through the centroid.
func movePoint(centroid, worst []float64, factor float64) []float64 {
	out := make([]float64, len(centroid))
	for d := range out {
		out[d] = centroid[d] + factor*(centroid[d]-worst[d])
	}
	return out
}

func sortDescending(pts []Point) {
	sort.Slice(pts, func(i, j int) bool { return pts[i].Cost > pts[j].Cost })
}
