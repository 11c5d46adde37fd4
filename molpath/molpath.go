/*
 * molpath.go, part of poreprofile.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
 * General Public License for more details.
 */

// Package molpath implements the Molecular Path model of spec.md §4.3: a
// pair of arc-length parameterized splines (3-D centre-line, 1-D radius)
// built from a path finder's probe samples, plus curvilinear-coordinate
// mapping of external points/residues onto the path and containment tests.
package molpath

import (
	"math"

	pp "github.com/rmera/poreprofile"
	"github.com/rmera/poreprofile/geometry"
	"github.com/rmera/poreprofile/internal/vec3"
)

// MolecularPath wraps the centre-line and radius splines fit from a sequence
// of probe samples, per spec.md §3/§4.3.
type MolecularPath struct {
	centre    *geometry.Curve3
	radius    *geometry.Spline1D
	points    []vec3.Vec
	radii     []float64
	arcParams []float64
	degree    int
	quadTol   float64
}

// New builds a MolecularPath from an ordered sequence of probe samples. It
// rejects degenerate sequences per spec.md §4.3's numeric policy: fewer than
// four samples, non-monotone s, or NaN coordinates/radii.
func New(samples []pp.ProbeSample, degree int, quadTol float64) (*MolecularPath, error) {
	if len(samples) < 4 {
		return nil, pp.NewError(pp.KindData, "molpath: need at least 4 probe samples, got %d", len(samples))
	}
	points := make([]vec3.Vec, len(samples))
	radii := make([]float64, len(samples))
	for i, s := range samples {
		if s.Centre.IsNaN() || math.IsNaN(s.Radius) {
			return nil, pp.NewError(pp.KindData, "molpath: NaN probe sample at index %d", i)
		}
		if i > 0 && !(s.S > samples[i-1].S) {
			return nil, pp.NewError(pp.KindData, "molpath: probe sample arc position s must be strictly increasing (index %d)", i)
		}
		points[i] = s.Centre
		radii[i] = s.Radius
	}

	centre, arcParams, err := geometry.FitArcLength(points, degree, quadTol)
	if err != nil {
		return nil, err
	}
	radiusSpline, err := geometry.FitInterpolating(arcParams, radii, degree)
	if err != nil {
		return nil, err
	}

	return &MolecularPath{
		centre:    centre,
		radius:    radiusSpline,
		points:    points,
		radii:     radii,
		arcParams: arcParams,
		degree:    degree,
		quadTol:   quadTol,
	}, nil
}

// FromDescriptors reconstructs a MolecularPath's splines from their
// serialized wire form (record.go's CentreLineDescriptor/SplineDescriptor),
// as a PerFrameRecord consumer does to re-render a path's surface without
// re-running the path finder. Mirrors geometry.FromDescriptor's knot
// reconstruction; PathPoints/PathRadii are unavailable on a path built this
// way, since the original unsplined samples are not part of the wire
// format.
func FromDescriptors(centre pp.CentreLineDescriptor, radius pp.SplineDescriptor, degree int) (*MolecularPath, error) {
	if len(centre.CtrlX) != len(centre.CtrlY) || len(centre.CtrlX) != len(centre.CtrlZ) {
		return nil, pp.NewError(pp.KindData, "molpath: centre-line descriptor has mismatched per-axis control point counts")
	}
	return &MolecularPath{
		centre: &geometry.Curve3{
			X: geometry.FromDescriptor(centre.Knots, centre.CtrlX, degree),
			Y: geometry.FromDescriptor(centre.Knots, centre.CtrlY, degree),
			Z: geometry.FromDescriptor(centre.Knots, centre.CtrlZ, degree),
		},
		radius:  geometry.FromDescriptor(radius.Knots, radius.Ctrl, degree),
		degree:  degree,
		quadTol: 1e-6,
	}, nil
}

// PathPoints returns the original sample centres, unchanged.
func (m *MolecularPath) PathPoints() []vec3.Vec { return append([]vec3.Vec(nil), m.points...) }

// PathRadii returns the original sample radii, unchanged.
func (m *MolecularPath) PathRadii() []float64 { return append([]float64(nil), m.radii...) }

// Domain returns [s_lo, s_hi].
func (m *MolecularPath) Domain() (lo, hi float64) { return m.centre.Domain() }

// PoreRadiusUniqueKnots returns R(s)'s distinct knot values, for serialization.
func (m *MolecularPath) PoreRadiusUniqueKnots() []float64 { return m.radius.UniqueKnots() }

// PoreRadiusCtrlPoints returns R(s)'s control points, for serialization.
func (m *MolecularPath) PoreRadiusCtrlPoints() []float64 { return m.radius.CtrlPoints() }

// CentreLineUniqueKnots returns C(s)'s distinct knot values (shared across
// the three axis splines), for serialization.
func (m *MolecularPath) CentreLineUniqueKnots() []float64 { return m.centre.X.UniqueKnots() }

// CentreLineCtrlPoints returns C(s)'s per-axis control points, for serialization.
func (m *MolecularPath) CentreLineCtrlPoints() (x, y, z []float64) {
	return m.centre.X.CtrlPoints(), m.centre.Y.CtrlPoints(), m.centre.Z.CtrlPoints()
}

// Radius evaluates R(s), linearly extrapolating outside [s_lo, s_hi].
func (m *MolecularPath) Radius(s float64) float64 { return m.radius.Eval(s) }

// Centre evaluates C(s), linearly extrapolating outside [s_lo, s_hi] via the
// same per-axis Spline1D.Eval behavior.
func (m *MolecularPath) Centre(s float64) vec3.Vec { return m.centre.Eval(s) }

// FrenetFrame returns the (tangent, normal, binormal) triad at s, used by
// the OBJ surface triangulation and by curvilinear-coordinate mapping.
func (m *MolecularPath) FrenetFrame(s float64) (tangent, normal, binormal vec3.Vec) {
	return m.centre.FrenetFrame(s)
}

// Shift translates the centre-line by a constant offset. Per spec.md §4.3,
// this is used to align frames by mapping the initial probe position onto
// the path and subtracting it. It exploits the B-spline partition-of-unity
// property via Spline1D.ShiftCtrl rather than refitting.
func (m *MolecularPath) Shift(offset vec3.Vec) {
	m.centre.X.ShiftCtrl(offset[0])
	m.centre.Y.ShiftCtrl(offset[1])
	m.centre.Z.ShiftCtrl(offset[2])
	for i := range m.points {
		m.points[i] = m.points[i].Add(offset)
	}
}

// Length returns the pathway's total arc length. Since C is reparameterized
// to be unit-speed in s, this is exactly s_hi - s_lo.
func (m *MolecularPath) Length() float64 {
	lo, hi := m.centre.Domain()
	return hi - lo
}

// Volume returns Int_s_lo^s_hi pi*R(s)^2 ds via composite Simpson on R's
// unique knot intervals (spec.md §4.3).
func (m *MolecularPath) Volume() float64 {
	f := func(s float64) float64 {
		r := m.radius.Eval(s)
		return math.Pi * r * r
	}
	return geometry.CompositeSimpson(f, m.radius.UniqueKnots(), m.quadTol)
}

// MinRadius minimizes R over [lo,hi] (clamped to the pathway domain), first
// by a dense grid scan at the given step, then by golden-section refinement
// around the grid minimum, per spec.md §4.3.
func (m *MolecularPath) MinRadius(lo, hi, step float64) (sAt, rAt float64) {
	dLo, dHi := m.centre.Domain()
	if lo < dLo {
		lo = dLo
	}
	if hi > dHi {
		hi = dHi
	}
	if step <= 0 {
		step = (hi - lo) / 100
	}
	if step <= 0 {
		return lo, m.radius.Eval(lo)
	}

	sAt, rAt = lo, m.radius.Eval(lo)
	for s := lo + step; s <= hi; s += step {
		r := m.radius.Eval(s)
		if r < rAt {
			rAt, sAt = r, s
		}
	}

	left := math.Max(lo, sAt-step)
	right := math.Min(hi, sAt+step)
	if right > left {
		refined := goldenSectionMin(m.radius.Eval, left, right, 1e-9)
		if r := m.radius.Eval(refined); r < rAt {
			rAt, sAt = r, refined
		}
	}
	return sAt, rAt
}
