/*
 * oracle.go, part of poreprofile.
 *
 * The in-plane cost oracle of spec.md §4.1: for a candidate in-plane
 * offset (a,b), the free radius at q = p + a*u + b*v is the minimum over
 * nearby particles of (||q - x_i|| - r_i), capped at the maximum free
 * distance; the optimizer maximizes it.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package pathfinder

import (
	"math"

	"github.com/rmera/poreprofile/internal/vec3"
	"github.com/rmera/poreprofile/neighbor"
	"github.com/rmera/poreprofile/optim"
)

// planeCostOracle builds the cost oracle for the plane anchored at p with
// in-plane basis (u,v), searching positions/radii through query.
func planeCostOracle(p, u, v vec3.Vec, positions []vec3.Vec, radii []float64, query neighbor.Query, maxFreeDist, maxVdwR, cutoff float64) optim.ObjectiveFunc {
	searchRadius := maxFreeDist + maxVdwR + cutoff
	return func(x []float64) float64 {
		q := p.Add(u.Scale(x[0])).Add(v.Scale(x[1]))
		neighbors := query.Within(q, searchRadius)
		if len(neighbors) == 0 {
			return maxFreeDist
		}
		best := math.Inf(1)
		for _, i := range neighbors {
			d := vec3.Dist(q, positions[i]) - radii[i]
			if d < best {
				best = d
			}
		}
		return math.Min(best, maxFreeDist)
	}
}

func maxRadius(radii []float64) float64 {
	var m float64
	for _, r := range radii {
		if r > m {
			m = r
		}
	}
	return m
}
