/*
 * vec3.go, part of poreprofile.
 *
 * Adapted from gochem's v3 package (github.com/rmera/gochem/v3), which
 * wraps a gonum matrix as a set of row vectors in 3D space. This version
 * drops the gonum matrix dependency altogether (it uses only the standard
 * library) and narrows the type to what the pore-pathway geometry code
 * actually needs: single points and small point clouds.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package vec3 provides cartesian points and point-cloud helpers shared by
// the geometry, path-finder and molecular-path packages.
package vec3

import "math"

// Vec is a point or free vector in ℝ³.
type Vec [3]float64

func New(x, y, z float64) Vec { return Vec{x, y, z} }

func (a Vec) Add(b Vec) Vec { return Vec{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a Vec) Sub(b Vec) Vec { return Vec{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func (a Vec) Scale(f float64) Vec { return Vec{a[0] * f, a[1] * f, a[2] * f} }

func (a Vec) Dot(b Vec) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec) Cross(b Vec) Vec {
	return Vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Norm2 returns the squared Euclidean length, avoiding a sqrt call on hot
// paths (mirrors the ρ² convention used for CurvilinearCoord).
func (a Vec) Norm2() float64 { return a.Dot(a) }

func (a Vec) Norm() float64 { return math.Sqrt(a.Norm2()) }

// Unit returns a normalized copy of a. Panics if a is the zero vector,
// since callers are expected to guard against a degenerate direction before
// asking to normalize it.
func (a Vec) Unit() Vec {
	n := a.Norm()
	if n == 0 {
		panic("vec3: cannot normalize the zero vector")
	}
	return a.Scale(1 / n)
}

func (a Vec) IsNaN() bool {
	return math.IsNaN(a[0]) || math.IsNaN(a[1]) || math.IsNaN(a[2])
}

// Dist2 returns the squared distance between a and b.
func Dist2(a, b Vec) float64 { return a.Sub(b).Norm2() }

func Dist(a, b Vec) float64 { return math.Sqrt(Dist2(a, b)) }

// Centroid returns the unweighted centre of geometry of pts.
func Centroid(pts []Vec) Vec {
	if len(pts) == 0 {
		return Vec{}
	}
	var sum Vec
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}

// WeightedCentroid returns the mass-weighted centroid (centre of mass) of
// pts with the given weights. Panics if the slices differ in length or the
// total weight is zero.
func WeightedCentroid(pts []Vec, weights []float64) Vec {
	if len(pts) != len(weights) {
		panic("vec3: WeightedCentroid requires len(pts) == len(weights)")
	}
	var sum Vec
	var total float64
	for i, p := range pts {
		sum = sum.Add(p.Scale(weights[i]))
		total += weights[i]
	}
	if total == 0 {
		panic("vec3: WeightedCentroid called with zero total weight")
	}
	return sum.Scale(1 / total)
}

// Basis returns an orthonormal basis (u, v) spanning the plane perpendicular
// to a unit direction d. Grounded on the same Gram-Schmidt trick gochem's
// v3/gocoords.go uses to build local reference frames for ring-puckering
// coordinates, specialised here to a single perpendicular pair.
func Basis(d Vec) (u, v Vec) {
	ref := Vec{1, 0, 0}
	if math.Abs(d.Dot(ref)) > 0.9 {
		ref = Vec{0, 1, 0}
	}
	u = ref.Sub(d.Scale(d.Dot(ref))).Unit()
	v = d.Cross(u).Unit()
	return u, v
}
