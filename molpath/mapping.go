/*
 * mapping.go, part of poreprofile.
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

package molpath

import (
	"math"

	pp "github.com/rmera/poreprofile"
	"github.com/rmera/poreprofile/internal/vec3"
)

// MapParams configures mapPositions/mapSelection/checkIfInside (spec.md
// §4.3's "Numeric policy"): sample_step governs grid scans (MinRadius),
// map_tol bounds the golden-section bracket width, extrap_dist is the
// allowed excursion past [s_lo,s_hi] before a mapped point is discarded.
type MapParams struct {
	SampleStep float64
	MapTol     float64
	ExtrapDist float64
}

func (p MapParams) validate() error {
	if p.MapTol <= 0 {
		return pp.NewError(pp.KindConfig, "molpath: map_tol must be positive")
	}
	if p.ExtrapDist < 0 {
		return pp.NewError(pp.KindConfig, "molpath: extrap_dist must be non-negative")
	}
	return nil
}

// Mapped is the curvilinear coordinate (s, rho^2, phi) of a point relative
// to the path, per spec.md §3's CurvilinearCoord.
type Mapped struct {
	S   float64
	Rho2 float64
	Phi  float64
}

// MapPositions solves, for each point p, min_s ||p - C(s)||^2 by locating
// the nearest sample, bracketing with its neighbors, and refining with
// golden-section search, per spec.md §4.3.
func (m *MolecularPath) MapPositions(points []vec3.Vec, p MapParams) ([]Mapped, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	lo, hi := m.centre.Domain()
	out := make([]Mapped, len(points))
	for i, pt := range points {
		out[i] = m.mapOne(pt, lo, hi, p)
	}
	return out, nil
}

func (m *MolecularPath) mapOne(p vec3.Vec, lo, hi float64, params MapParams) Mapped {
	best := 0
	bestD := math.Inf(1)
	for i, c := range m.points {
		d := vec3.Dist2(p, c)
		if d < bestD {
			bestD = d
			best = i
		}
	}

	left, right := lo, hi
	if best > 0 {
		left = m.arcParams[best-1]
	}
	if best < len(m.arcParams)-1 {
		right = m.arcParams[best+1]
	}

	cost := func(s float64) float64 { return vec3.Dist2(p, m.centre.Eval(s)) }
	sHat := left
	if right > left {
		sHat = goldenSectionMin(cost, left, right, params.MapTol)
	}
	// Past either end of the sampled path, follow the linear extrapolation
	// of C, so that such points map to an s outside [lo,hi].
	if n := len(m.points); n > 0 && (best == 0 || best == n-1) {
		edge, dir := hi, 1.0
		if best == 0 {
			edge, dir = lo, -1.0
		}
		if d1 := m.centre.Deriv(edge, 1); d1.Norm2() > 0 {
			if t := p.Sub(m.centre.Eval(edge)).Dot(d1) / d1.Norm2(); t*dir > 0 {
				sHat = edge + t
			}
		}
	}

	cs := m.centre.Eval(sHat)
	rho2 := vec3.Dist2(p, cs)
	_, normal, binormal := m.centre.FrenetFrame(sHat)
	diff := p.Sub(cs)
	phi := math.Atan2(diff.Dot(binormal), diff.Dot(normal))

	return Mapped{S: sHat, Rho2: rho2, Phi: phi}
}

// ResidueMapped pairs a residue id with its mapped coordinate.
type ResidueMapped struct {
	ResID int
	Mapped
}

// representative extracts the position used to map a residue: its centre
// of geometry, or its alpha carbon when by is true.
func representative(r pp.Residue, ca bool) (vec3.Vec, bool) {
	if ca {
		return r.AlphaCarbon()
	}
	return r.COG(), true
}

// MapSelection maps a batch of residues by centre of geometry (or, when ca
// is true, by alpha carbon), keyed on residue id. Residues with no
// representative atom, or whose mapped s falls outside [s_lo-extrap_dist,
// s_hi+extrap_dist], are omitted, per spec.md §4.3.
func (m *MolecularPath) MapSelection(residues []pp.Residue, ca bool, p MapParams) (map[int]Mapped, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	lo, hi := m.centre.Domain()
	extLo, extHi := lo-p.ExtrapDist, hi+p.ExtrapDist

	out := make(map[int]Mapped, len(residues))
	for _, r := range residues {
		pos, ok := representative(r, ca)
		if !ok {
			continue
		}
		mp := m.mapOne(pos, lo, hi, p)
		if mp.S < extLo || mp.S > extHi {
			continue
		}
		out[r.ID] = mp
	}
	return out, nil
}

// CheckIfInside tests, for each mapped point, whether s falls within
// [lo,hi] and rho^2 <= (R(s)+margin)^2. lo and hi are used exactly as
// given; there is no default range. Per testable property 5,
// increasing margin can never turn an inside point outside.
func (m *MolecularPath) CheckIfInside(mapped []Mapped, margin float64, lo, hi float64) []bool {
	out := make([]bool, len(mapped))
	for i, mp := range mapped {
		if mp.S < lo || mp.S > hi {
			out[i] = false
			continue
		}
		r := m.radius.Eval(mp.S)
		limit := r + margin
		out[i] = mp.Rho2 <= limit*limit
	}
	return out
}

// goldenSectionMin minimizes f over [a,b] until the bracket width is below
// tol, using the classic golden-section search. No third-party library in
// the corpus offers a bounded scalar minimizer of this shape (gonum/optimize
// targets multivariate problems); this is a small, self-contained numeric
// routine in the same hand-rolled style as geometry.AdaptiveSimpson.
func goldenSectionMin(f func(float64) float64, a, b, tol float64) float64 {
	const invPhi = 0.6180339887498949
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, fd := f(c), f(d)
	for b-a > tol {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			fd = f(d)
		}
	}
	return (a + b) / 2
}
