/*
 * kdtree.go, part of poreprofile.
 *
 * Default spatial index backing neighbor.Query, built on
 * gonum.org/v1/gonum/spatial/kdtree's ready-made Points/Point helpers. The
 * teacher's own trajectory code has no spatial index of its own (neighbor
 * search is delegated to the external GROMACS selection engine per
 * spec.md §9), so this is grounded directly on the gonum package rather
 * than on any teacher file.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package neighbor

import (
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/rmera/poreprofile/internal/vec3"
)

// Index is a kd-tree-backed Query over a fixed particle cloud.
type Index struct {
	tree *kdtree.Tree
	// byCoord recovers the original local index of a kdtree.Point result,
	// keyed by its exact coordinates (safe since the tree never perturbs
	// the coordinates it was built from).
	byCoord map[[3]float64]int
}

// NewIndex builds a kd-tree over points.
func NewIndex(points []vec3.Vec) *Index {
	pts := make(kdtree.Points, len(points))
	byCoord := make(map[[3]float64]int, len(points))
	for i, p := range points {
		pts[i] = kdtree.Point{p[0], p[1], p[2]}
		byCoord[[3]float64{p[0], p[1], p[2]}] = i
	}
	return &Index{tree: kdtree.New(pts, false), byCoord: byCoord}
}

// Within returns the local indices of every point within r of p. Ties on
// exactly duplicated coordinates resolve to whichever local index was last
// assigned that coordinate; callers with many coincident particles should
// prefer Brute, which has no such ambiguity.
func (ix *Index) Within(p vec3.Vec, r float64) []int {
	keeper := kdtree.NewDistKeeper(r * r)
	ix.tree.NearestSet(keeper, kdtree.Point{p[0], p[1], p[2]})

	out := make([]int, 0, keeper.Len())
	for _, cd := range keeper.Heap {
		pt := cd.Comparable.(kdtree.Point)
		if idx, ok := ix.byCoord[[3]float64{pt[0], pt[1], pt[2]}]; ok {
			out = append(out, idx)
		}
	}
	return out
}
