/*
 * aggregator.go, part of poreprofile.
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

package aggregate

import (
	"math"

	pp "github.com/rmera/poreprofile"
	"github.com/rmera/poreprofile/geometry"
)

// Params configures the aggregator's common support grid (spec.md §6's
// out-num-points/out-extrap-dist).
type Params struct {
	OutNumPoints int
	OutExtrapDist float64
	Degree       int
}

// ResidueSummary accumulates one residue's statistics across every frame
// where it was mapped. Residues absent in a frame contribute no update, so
// n can diverge across residues — this is intentional, per spec.md §4.6.
// All fields of one residue are updated together.
type ResidueSummary struct {
	ResID             int
	S, Rho, Phi       *SummaryStats
	PoreRadius        *SummaryStats
	SolventDensity    *SummaryStats
	PoreLiningFrames  int64
	PoreFacingFrames  int64
	TotalFrames       int64
}

func newResidueSummary(id int) *ResidueSummary {
	return &ResidueSummary{
		ResID:          id,
		S:              NewSummaryStats(),
		Rho:            NewSummaryStats(),
		Phi:            NewSummaryStats(),
		PoreRadius:     NewSummaryStats(),
		SolventDensity: NewSummaryStats(),
	}
}

// Result is the aggregator's output: time-averaged profiles on the common
// grid, scalar pathway-level summaries, time series with timestamps, and
// per-residue summaries.
type Result struct {
	Grid           []float64
	RadiusProfile  []*SummaryStats
	DensityProfile []*SummaryStats
	EnergyProfile  []*SummaryStats
	PLHydroProfile []*SummaryStats
	PFHydroProfile []*SummaryStats

	Scalars    map[string]*SummaryStats
	TimeSeries map[string][]float64
	Timestamps []float64

	ResidueStats map[int]*ResidueSummary
	residueOrder []int
}

// Run performs the two streaming passes of spec.md §4.6 over a slice of
// per-frame records (read once into memory rather than re-reading the
// per-frame file twice, an equivalent and simpler realization of the same
// two-pass contract). Records with PathSummary.Failed are skipped for
// every scalar/profile update but still allowed their timestamp recorded,
// per spec.md §7's "skip scalar updates for missing fields" policy.
func Run(records []pp.PerFrameRecord, p Params) (*Result, error) {
	degree := p.Degree
	if degree <= 0 {
		degree = geometry.DefaultDegree
	}
	n := p.OutNumPoints
	if n < 2 {
		n = 200
	}

	res := &Result{
		Scalars:      map[string]*SummaryStats{},
		TimeSeries:   map[string][]float64{},
		ResidueStats: map[int]*ResidueSummary{},
	}
	for _, key := range scalarKeys {
		res.Scalars[key] = NewSummaryStats()
		res.TimeSeries[key] = make([]float64, 0, len(records))
	}

	sMin, sMax := math.Inf(1), math.Inf(-1)
	for _, rec := range records {
		res.Timestamps = append(res.Timestamps, rec.PathSummary.Timestamp)
		if rec.PathSummary.Failed {
			for _, key := range scalarKeys {
				res.TimeSeries[key] = append(res.TimeSeries[key], math.NaN())
			}
			continue
		}
		addScalars(res, rec.PathSummary)
		if rec.PathSummary.SLo < sMin {
			sMin = rec.PathSummary.SLo
		}
		if rec.PathSummary.SHi > sMax {
			sMax = rec.PathSummary.SHi
		}
	}

	if math.IsInf(sMin, 1) {
		// every frame failed; nothing to build a grid over.
		return res, nil
	}

	lo, hi := sMin-p.OutExtrapDist, sMax+p.OutExtrapDist
	res.Grid = make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		res.Grid[i] = lo + float64(i)*step
	}
	res.RadiusProfile = newStatsSlice(n)
	res.DensityProfile = newStatsSlice(n)
	res.EnergyProfile = newStatsSlice(n)
	res.PLHydroProfile = newStatsSlice(n)
	res.PFHydroProfile = newStatsSlice(n)

	firstFrame := true
	for _, rec := range records {
		if rec.PathSummary.Failed {
			continue
		}
		if err := accumulateFrame(res, rec, degree); err != nil {
			return nil, err
		}
		accumulateResidues(res, rec, firstFrame)
		firstFrame = false
	}

	shiftEnergyProfile(res)
	return res, nil
}

var scalarKeys = []string{
	"minRadius", "minRadiusArgS", "length", "volume",
	"nSolventInPore", "nSolventInSample",
	"densityBandwidth", "plHydrophobicityBandwidth", "pfHydrophobicityBandwidth",
	"initProbeS",
}

func addScalars(res *Result, s pp.PathSummary) {
	vals := map[string]float64{
		"minRadius":                 s.MinRadius,
		"minRadiusArgS":             s.MinRadiusArgS,
		"length":                    s.Length,
		"volume":                    s.Volume,
		"nSolventInPore":            float64(s.NSolventInPore),
		"nSolventInSample":          float64(s.NSolventInSample),
		"densityBandwidth":          s.DensityBandwidth,
		"plHydrophobicityBandwidth": s.PLHydrophobicityBandwidth,
		"pfHydrophobicityBandwidth": s.PFHydrophobicityBandwidth,
		"initProbeS":                s.InitProbeS,
	}
	for _, key := range scalarKeys {
		v := vals[key]
		res.Scalars[key].Add(v)
		res.TimeSeries[key] = append(res.TimeSeries[key], v)
	}
}

func newStatsSlice(n int) []*SummaryStats {
	out := make([]*SummaryStats, n)
	for i := range out {
		out[i] = NewSummaryStats()
	}
	return out
}

func accumulateFrame(res *Result, rec pp.PerFrameRecord, degree int) error {
	radiusSpline := geometry.FromDescriptor(rec.MolPathRadiusSpline.Knots, rec.MolPathRadiusSpline.Ctrl, degree)
	densitySpline := geometry.FromDescriptor(rec.SolventDensitySpline.Knots, rec.SolventDensitySpline.Ctrl, degree)
	plSpline := geometry.FromDescriptor(rec.PLHydrophobicitySpline.Knots, rec.PLHydrophobicitySpline.Ctrl, degree)
	pfSpline := geometry.FromDescriptor(rec.PFHydrophobicitySpline.Knots, rec.PFHydrophobicitySpline.Ctrl, degree)

	n := len(res.Grid)
	anchorDensity := 0.5 * (densitySpline.Eval(res.Grid[0]) + densitySpline.Eval(res.Grid[n-1]))

	for i, s := range res.Grid {
		res.RadiusProfile[i].Add(radiusSpline.Eval(s))
		d := densitySpline.Eval(s)
		res.DensityProfile[i].Add(d)
		if d > 0 && anchorDensity > 0 {
			res.EnergyProfile[i].Add(-math.Log(d / anchorDensity))
		}
		res.PLHydroProfile[i].Add(plSpline.Eval(s))
		res.PFHydroProfile[i].Add(pfSpline.Eval(s))
	}
	return nil
}

// shiftEnergyProfile implements spec.md §4.6's final step: shift the whole
// energy profile so the mean of the two grid-edge anchor energies is zero.
func shiftEnergyProfile(res *Result) {
	n := len(res.EnergyProfile)
	if n == 0 {
		return
	}
	anchorMean := 0.5 * (res.EnergyProfile[0].Mean() + res.EnergyProfile[n-1].Mean())
	for _, s := range res.EnergyProfile {
		s.Shift(-anchorMean)
	}
}

func accumulateResidues(res *Result, rec pp.PerFrameRecord, firstFrame bool) {
	for _, rp := range rec.ResiduePositions {
		rs, ok := res.ResidueStats[rp.ResID]
		if !ok {
			rs = newResidueSummary(rp.ResID)
			res.ResidueStats[rp.ResID] = rs
			res.residueOrder = append(res.residueOrder, rp.ResID)
		}
		rs.S.Add(rp.S)
		rs.Rho.Add(rp.Rho)
		rs.Phi.Add(rp.Phi)
		rs.PoreRadius.Add(rp.PoreRadius)
		rs.SolventDensity.Add(rp.SolventDensity)
		rs.TotalFrames++
		if rp.PoreLining {
			rs.PoreLiningFrames++
		}
		if rp.PoreFacing {
			rs.PoreFacingFrames++
		}
	}
}
