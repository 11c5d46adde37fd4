/*
 * query.go, part of poreprofile.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package neighbor implements the "list particles within r of point p"
// query spec.md §4.1/§9 treats as an external collaborator's contract, with
// a concrete gonum/spatial/kdtree-backed default (Index) and a brute-force
// fallback (Brute) used for small selections and for deterministic tests.
package neighbor

import "github.com/rmera/poreprofile/internal/vec3"

// Query answers "which particles (by local index into the cloud this Query
// was built from) lie within r of p".
type Query interface {
	Within(p vec3.Vec, r float64) []int
}
