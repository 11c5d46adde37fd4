/*
 * params.go, part of poreprofile.
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

// Package pipeline drives one frame through finder -> path -> mappings ->
// density -> hydrophobicity -> record, per spec.md §4.5, and the bounded
// worker pool permitted (not required) by §5's concurrency model.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/rmera/poreprofile/density"
	"github.com/rmera/poreprofile/internal/vec3"
	"github.com/rmera/poreprofile/molpath"
	"github.com/rmera/poreprofile/pathfinder"
	"github.com/rmera/poreprofile/radii"
)

// Params bundles every per-component configuration value the pipeline
// needs for one run, constructed once from the CLI and shared read-only
// across frames (spec.md §9's "explicit per-component configuration value,
// constructed once... and passed by reference" design note).
type Params struct {
	Finder     pathfinder.Params
	ChannelDir vec3.Vec

	// InitProbePos is the explicit seed (pf-init-probe-pos). When nil, the
	// pipeline derives it from the frame's InitProbeSelection's mass-weighted
	// centroid (pf-sel-ipp), per SPEC_FULL's resolved Open Question #2.
	InitProbePos *vec3.Vec
	Align        bool

	MolPathDegree int
	QuadTol       float64
	MapParams     molpath.MapParams

	PoreLiningMargin float64

	VdWTable       *radii.Table
	HydrophobTable *radii.HydrophobicityTable

	SolventDensity     density.Params
	SolventDensityRes  int // de-res: grid resolution for the f-hat -> number-density resampling
	Hydrophobicity     density.Params
	HydrophobAnchorPad float64 // half-width of the zero-padded anchors; defaults to Finder.ProbeStep/2

	Logger *zap.Logger
}

func (p Params) anchorPad() float64 {
	if p.HydrophobAnchorPad > 0 {
		return p.HydrophobAnchorPad
	}
	return p.Finder.ProbeStep / 2
}

func (p Params) logger() *zap.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return zap.NewNop()
}

func (p Params) densityRes() int {
	if p.SolventDensityRes > 0 {
		return p.SolventDensityRes
	}
	return 200
}
