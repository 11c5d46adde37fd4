/*
 * types.go, part of poreprofile.
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

// Package poreprofile holds the particle/selection/residue data model shared
// by every subsystem that analyzes an ion-channel pore pathway: the
// probe-based path finder, the molecular path model, the density and
// hydrophobicity estimators, the per-frame pipeline and the aggregator.
//
// Trajectory reading, particle selection parsing, and the CLI itself are
// external collaborators (see the CORE scope in spec.md §1); this package
// only defines the types those collaborators hand to the core.
package poreprofile

import "github.com/rmera/poreprofile/internal/vec3"

// Particle is one atom in a single trajectory frame: identifier (topology
// index), residue id, position, mass and van-der-Waals radius.
type Particle struct {
	Index    int // global topology id
	ResID    int
	ResName  string
	AtomName string
	Chain    string
	CA       bool // true iff this is the residue's alpha carbon
	Pos      vec3.Vec
	Mass     float64
	VdWR     float64
}

// Selection is an ordered set of particle indices into a frame, with a
// stable mapping between the local index (0..N-1) and the particle's global
// topology id (Particle.Index).
type Selection struct {
	Particles []Particle
}

func (s Selection) Len() int { return len(s.Particles) }

// GlobalIndex maps a local index (0..N-1) to the particle's topology id.
func (s Selection) GlobalIndex(local int) int { return s.Particles[local].Index }

// Positions returns the bare coordinates of the selection, in local-index
// order, for consumption by the neighbor query and path finder.
func (s Selection) Positions() []vec3.Vec {
	out := make([]vec3.Vec, len(s.Particles))
	for i, p := range s.Particles {
		out[i] = p.Pos
	}
	return out
}

// Radii returns the van-der-Waals radii in local-index order.
func (s Selection) Radii() []float64 {
	out := make([]float64, len(s.Particles))
	for i, p := range s.Particles {
		out[i] = p.VdWR
	}
	return out
}

// Centroid returns the unweighted centre of geometry of the selection.
func (s Selection) Centroid() vec3.Vec {
	return vec3.Centroid(s.Positions())
}

// MassWeightedCentroid returns the centre of mass of the selection. Per
// SPEC_FULL.md §4 (Resolved Open Questions #2), this is what the pipeline
// uses for a selection-derived initial probe position, even where the
// original source's comment claimed "centre of geometry".
func (s Selection) MassWeightedCentroid() vec3.Vec {
	weights := make([]float64, len(s.Particles))
	for i, p := range s.Particles {
		weights[i] = p.Mass
	}
	return vec3.WeightedCentroid(s.Positions(), weights)
}

// Residue groups the atoms of one residue, keyed by ResID, as needed by
// MapSelection and the pore-lining/pore-facing classification of §4.5.
type Residue struct {
	ID      int
	Name    string
	Chain   string
	Atoms   []Particle
}

// COG returns the residue's unweighted centre of geometry.
func (r Residue) COG() vec3.Vec {
	pts := make([]vec3.Vec, len(r.Atoms))
	for i, a := range r.Atoms {
		pts[i] = a.Pos
	}
	return vec3.Centroid(pts)
}

// AlphaCarbon returns the residue's Cα position and whether one was found.
func (r Residue) AlphaCarbon() (vec3.Vec, bool) {
	for _, a := range r.Atoms {
		if a.CA {
			return a.Pos, true
		}
	}
	return vec3.Vec{}, false
}

// GroupByResidue collapses a Selection into per-residue Residue records,
// preserving first-seen order of residue ids.
func GroupByResidue(sel Selection) []Residue {
	order := make([]int, 0)
	byID := make(map[int]*Residue)
	for _, p := range sel.Particles {
		r, ok := byID[p.ResID]
		if !ok {
			r = &Residue{ID: p.ResID, Name: p.ResName, Chain: p.Chain}
			byID[p.ResID] = r
			order = append(order, p.ResID)
		}
		r.Atoms = append(r.Atoms, p)
	}
	out := make([]Residue, len(order))
	for i, id := range order {
		out[i] = *byID[id]
	}
	return out
}

// ProbeSample is a single maximum-inscribed-sphere sample produced by the
// path finder: centre, free radius and (once assigned, post-hoc, by
// cumulative chord length) the arc-length position s.
type ProbeSample struct {
	Centre vec3.Vec
	Radius float64
	S      float64
}
