/*
 * curve3.go, part of poreprofile.
 *
 * A vector-valued interpolating spline curve in R^3, built from three
 * independent Spline1D per-axis curves, plus chord-length-to-arc-length
 * reparameterization (spec.md §3 "Centre-line C(s)", §4.3 step 2) and the
 * Frenet frame used for curvilinear-coordinate mapping (§4.3).
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package geometry

import (
	pp "github.com/rmera/poreprofile"
	"github.com/rmera/poreprofile/internal/vec3"
)

// Curve3 is a unit-speed (to within quadrature tolerance) interpolating
// cubic spline curve through a sequence of 3D points.
type Curve3 struct {
	X, Y, Z *Spline1D
}

// ChordLengthParams returns the cumulative chord-length parameterization
// t_0=0, t_k = t_{k-1} + |p_k - p_{k-1}| used to seed the initial fit
// (spec.md §4.3 step 1).
func ChordLengthParams(pts []vec3.Vec) []float64 {
	t := make([]float64, len(pts))
	for k := 1; k < len(pts); k++ {
		t[k] = t[k-1] + vec3.Dist(pts[k-1], pts[k])
	}
	return t
}

// fitRaw builds a Curve3 interpolating pts at the given (not yet
// arc-length-corrected) parameters.
func fitRaw(params []float64, pts []vec3.Vec, degree int) (*Curve3, error) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	zs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i], zs[i] = p[0], p[1], p[2]
	}
	sx, err := FitInterpolating(params, xs, degree)
	if err != nil {
		return nil, err
	}
	sy, err := FitInterpolating(params, ys, degree)
	if err != nil {
		return nil, err
	}
	sz, err := FitInterpolating(params, zs, degree)
	if err != nil {
		return nil, err
	}
	return &Curve3{X: sx, Y: sy, Z: sz}, nil
}

// Eval evaluates the curve at parameter t.
func (c *Curve3) Eval(t float64) vec3.Vec {
	return vec3.Vec{c.X.Eval(t), c.Y.Eval(t), c.Z.Eval(t)}
}

// Deriv evaluates the `order`-th derivative at t.
func (c *Curve3) Deriv(t float64, order int) vec3.Vec {
	return vec3.Vec{c.X.Deriv(t, order), c.Y.Deriv(t, order), c.Z.Deriv(t, order)}
}

// Speed returns |C'(t)|.
func (c *Curve3) Speed(t float64) float64 {
	return c.Deriv(t, 1).Norm()
}

// ArcLength returns the integral of the curve's speed over [a,b], to
// within tol, via adaptive Simpson quadrature (spec.md §4.3 step 2).
func (c *Curve3) ArcLength(a, b, tol float64) float64 {
	if b < a {
		return -c.ArcLength(b, a, tol)
	}
	return AdaptiveSimpson(c.Speed, a, b, tol)
}

func (c *Curve3) Domain() (lo, hi float64) { return c.X.Domain() }

// FrenetFrame returns the (unit tangent, unit normal, binormal) triad at t,
// derived from C'(t) and C''(t). If the curvature is (near) zero, normal
// and binormal are chosen as an arbitrary but consistent perpendicular
// basis via vec3.Basis, so the frame is always well defined.
func (c *Curve3) FrenetFrame(t float64) (tangent, normal, binormal vec3.Vec) {
	d1 := c.Deriv(t, 1)
	if d1.Norm2() == 0 {
		tangent = vec3.Vec{0, 0, 1}
	} else {
		tangent = d1.Unit()
	}
	d2 := c.Deriv(t, 2)
	proj := d2.Sub(tangent.Scale(d2.Dot(tangent)))
	if proj.Norm2() < 1e-18 {
		normal, binormal = vec3.Basis(tangent)
		return tangent, normal, binormal
	}
	normal = proj.Unit()
	binormal = tangent.Cross(normal)
	return tangent, normal, binormal
}

// FitArcLength builds a Curve3 that interpolates pts and is reparameterized
// by arc length, per spec.md §4.3:
//  1. seed parameters by cumulative chord length;
//  2. fit a raw spline through pts at those parameters;
//  3. compute the true arc length at each sample by integrating the raw
//     spline's speed;
//  4. refit at the corrected (arc-length) parameters, so the final curve's
//     knots ARE arc-length positions and ||C'(s)|| ≈ 1 without needing a
//     function composition at evaluation time.
//
// Returns the corrected per-sample arc-length parameters alongside the
// curve, since callers (MolecularPath) need them to also fit R(s) on a
// matching domain and to stamp ProbeSample.S.
func FitArcLength(pts []vec3.Vec, degree int, quadTol float64) (*Curve3, []float64, error) {
	if len(pts) < degree+1 {
		return nil, nil, pp.NewError(pp.KindData, "geometry: need at least %d samples for a degree-%d curve, got %d", degree+1, degree, len(pts))
	}
	for _, p := range pts {
		if p.IsNaN() {
			return nil, nil, pp.NewError(pp.KindData, "geometry: NaN coordinate in curve samples")
		}
	}
	chord := ChordLengthParams(pts)
	raw, err := fitRaw(chord, pts, degree)
	if err != nil {
		return nil, nil, err
	}
	arc := make([]float64, len(chord))
	for k := 1; k < len(chord); k++ {
		arc[k] = arc[k-1] + raw.ArcLength(chord[k-1], chord[k], quadTol)
	}
	corrected, err := fitRaw(arc, pts, degree)
	if err != nil {
		return nil, nil, err
	}
	return corrected, arc, nil
}
