/*
 * brute.go, part of poreprofile.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package neighbor

import "github.com/rmera/poreprofile/internal/vec3"

// Brute is a linear-scan Query, exact and order-deterministic, used for
// small particle clouds and wherever test determinism matters more than
// asymptotic performance.
type Brute struct {
	points []vec3.Vec
}

func NewBrute(points []vec3.Vec) *Brute {
	return &Brute{points: points}
}

func (b *Brute) Within(p vec3.Vec, r float64) []int {
	r2 := r * r
	out := make([]int, 0)
	for i, q := range b.points {
		if vec3.Dist2(p, q) <= r2 {
			out = append(out, i)
		}
	}
	return out
}
