/*
 * pipeline.go, part of poreprofile.
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

package pipeline

import (
	"math"

	"go.uber.org/zap"

	pp "github.com/rmera/poreprofile"
	"github.com/rmera/poreprofile/density"
	"github.com/rmera/poreprofile/geometry"
	"github.com/rmera/poreprofile/internal/vec3"
	"github.com/rmera/poreprofile/molpath"
	"github.com/rmera/poreprofile/neighbor"
	"github.com/rmera/poreprofile/pathfinder"
	"github.com/rmera/poreprofile/radii"
)

// FrameInput is everything one call to RunFrame needs from the (external)
// trajectory reader and selection engine for a single frame.
type FrameInput struct {
	Timestamp float64

	// Sample is the particle cloud the path finder searches through.
	Sample pp.Selection

	// InitProbeSelection is used to derive the initial probe position when
	// Params.InitProbePos is nil.
	InitProbeSelection pp.Selection

	// PoreResidues are the pore-defining residues classified as
	// pore-lining/pore-facing and mapped into residuePositions.
	PoreResidues []pp.Residue

	// SolventResidues are mapped for solvent density estimation. Nil skips
	// solvent mapping entirely (spec.md §4.5 step 6 is conditional).
	SolventResidues []pp.Residue
}

// RunFrame drives one frame through the full per-frame pipeline of
// spec.md §4.5 and returns the record to be appended to the per-frame
// stream. A finder/molpath failure yields a record with only
// PathSummary.Timestamp and PathSummary.Failed set and every other field
// left at its zero value, per spec.md §7's
// per-frame failure policy — it is not returned as an error, since the
// run as a whole must continue past a bad frame.
func RunFrame(p Params, in FrameInput) (pp.PerFrameRecord, error) {
	log := p.logger()

	radiiVals, err := lookupRadii(p.VdWTable, in.Sample.Particles)
	if err != nil {
		return failedRecord(in.Timestamp), nil
	}

	p0 := in.InitProbeSelection.MassWeightedCentroid()
	if p.InitProbePos != nil {
		p0 = *p.InitProbePos
	}

	positions := in.Sample.Positions()
	query := neighbor.NewIndex(positions)

	finder := pathfinder.New(p.Finder)
	samples, err := finder.Run(p0, p.ChannelDir, positions, radiiVals, query)
	if err != nil {
		log.Warn("path finder failed frame", zap.Float64("timestamp", in.Timestamp), zap.Error(err))
		return failedRecord(in.Timestamp), nil
	}

	path, err := molpath.New(samples, p.MolPathDegree, p.QuadTol)
	if err != nil {
		log.Warn("molecular path construction failed frame", zap.Float64("timestamp", in.Timestamp), zap.Error(err))
		return failedRecord(in.Timestamp), nil
	}

	var s0 float64
	if mapped, mErr := path.MapPositions([]vec3.Vec{p0}, p.MapParams); mErr == nil && len(mapped) == 1 {
		s0 = mapped[0].S
		if p.Align {
			centre := path.Centre(s0)
			path.Shift(centre.Scale(-1))
		}
	}

	lo, hi := path.Domain()
	sMinArg, minR := path.MinRadius(lo, hi, p.MapParams.SampleStep)

	residueRecords, plXs, plWs, pfXs, pfWs := classifyResidues(path, in.PoreResidues, p.HydrophobTable, p.MapParams, p.PoreLiningMargin, lo, hi)

	pad := p.anchorPad()
	plXs = append(plXs, lo-pad, hi+pad)
	plWs = append(plWs, 0, 0)
	pfXs = append(pfXs, lo-pad, hi+pad)
	pfWs = append(pfWs, 0, 0)

	plResult, err := density.EstimateWeighted(plXs, plWs, p.Hydrophobicity)
	if err != nil {
		return failedRecord(in.Timestamp), nil
	}
	pfResult, err := density.EstimateWeighted(pfXs, pfWs, p.Hydrophobicity)
	if err != nil {
		return failedRecord(in.Timestamp), nil
	}

	nInPore, nInSample, solventRecords, densitySpline, densityBW := mapSolvent(path, in.SolventResidues, p.MapParams, p.densityRes(), p.SolventDensity)

	for i := range residueRecords {
		residueRecords[i].SolventDensity = densitySpline.Eval(residueRecords[i].S)
	}

	rec := pp.PerFrameRecord{
		PathSummary: pp.PathSummary{
			Timestamp:                 in.Timestamp,
			SLo:                       lo,
			SHi:                       hi,
			MinRadius:                 minR,
			MinRadiusArgS:             sMinArg,
			Length:                    path.Length(),
			Volume:                    path.Volume(),
			NSolventInPore:            nInPore,
			NSolventInSample:          nInSample,
			DensityBandwidth:          densityBW,
			PLHydrophobicityBandwidth: plResult.Bandwidth,
			PFHydrophobicityBandwidth: pfResult.Bandwidth,
			InitProbeS:                s0,
			Failed:                    false,
		},
		MolPathOrigPoints:       origPoints(path),
		MolPathRadiusSpline:     pp.SplineDescriptor{Knots: path.PoreRadiusUniqueKnots(), Ctrl: path.PoreRadiusCtrlPoints()},
		MolPathCentreLineSpline: centreLineDescriptor(path),
		ResiduePositions:        residueRecords,
		SolventPositions:        solventRecords,
		SolventDensitySpline:    pp.SplineDescriptor{Knots: densitySpline.UniqueKnots(), Ctrl: densitySpline.CtrlPoints()},
		PLHydrophobicitySpline:  pp.SplineDescriptor{Knots: plResult.Spline.UniqueKnots(), Ctrl: plResult.Spline.CtrlPoints()},
		PFHydrophobicitySpline:  pp.SplineDescriptor{Knots: pfResult.Spline.UniqueKnots(), Ctrl: pfResult.Spline.CtrlPoints()},
	}
	return rec, nil
}

func failedRecord(timestamp float64) pp.PerFrameRecord {
	return pp.PerFrameRecord{PathSummary: pp.PathSummary{Timestamp: timestamp, Failed: true}}
}

func lookupRadii(t *radii.Table, particles []pp.Particle) ([]float64, error) {
	out := make([]float64, len(particles))
	for i, part := range particles {
		v, err := t.Lookup(part.ResName, part.AtomName)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func origPoints(path *molpath.MolecularPath) pp.OrigPoints {
	pts := path.PathPoints()
	radiiVals := path.PathRadii()
	out := pp.OrigPoints{
		X: make([]float64, len(pts)),
		Y: make([]float64, len(pts)),
		Z: make([]float64, len(pts)),
		R: append([]float64(nil), radiiVals...),
	}
	for i, p := range pts {
		out.X[i], out.Y[i], out.Z[i] = p[0], p[1], p[2]
	}
	return out
}

func centreLineDescriptor(path *molpath.MolecularPath) pp.CentreLineDescriptor {
	x, y, z := path.CentreLineCtrlPoints()
	return pp.CentreLineDescriptor{Knots: path.CentreLineUniqueKnots(), CtrlX: x, CtrlY: y, CtrlZ: z}
}

// classifyResidues maps each pore-defining residue's COG and Cα onto the
// path and classifies pore-lining/pore-facing per spec.md §4.5 step 4, also
// collecting the (s, hydrophobicity) series needed for step 5.
func classifyResidues(path *molpath.MolecularPath, residues []pp.Residue, hydro *radii.HydrophobicityTable, mp molpath.MapParams, margin, lo, hi float64) (records []pp.ResidueRecord, plXs, plWs, pfXs, pfWs []float64) {
	cogMapped, err := path.MapSelection(residues, false, mp)
	if err != nil {
		return nil, nil, nil, nil, nil
	}
	caMapped, err := path.MapSelection(residues, true, mp)
	if err != nil {
		caMapped = map[int]molpath.Mapped{}
	}

	for _, r := range residues {
		cog, ok := cogMapped[r.ID]
		if !ok {
			continue
		}
		lining := path.CheckIfInside([]molpath.Mapped{cog}, margin, lo, hi)[0]
		facing := false
		if lining {
			if ca, ok2 := caMapped[r.ID]; ok2 {
				facing = cog.Rho2 < ca.Rho2
			}
		}
		cogPos := r.COG()
		records = append(records, pp.ResidueRecord{
			ResID:      r.ID,
			S:          cog.S,
			Rho:        cog.Rho2,
			Phi:        cog.Phi,
			PoreLining: lining,
			PoreFacing: facing,
			PoreRadius: path.Radius(cog.S),
			X:          cogPos[0],
			Y:          cogPos[1],
			Z:          cogPos[2],
		})

		hv, hErr := hydro.Lookup(r.Name)
		if hErr != nil {
			continue
		}
		if lining {
			plXs = append(plXs, cog.S)
			plWs = append(plWs, hv)
		}
		if facing {
			pfXs = append(pfXs, cog.S)
			pfWs = append(pfWs, hv)
		}
	}
	return records, plXs, plWs, pfXs, pfWs
}

// mapSolvent maps solvent residues onto the path (spec.md §4.5 step 6),
// counts pore/sample membership, estimates the raw density f-hat(s) and
// converts it to a number density n-hat(s) = f-hat(s)*N_sample/(pi*R(s)^2)
// resampled onto a uniform grid and refit as a spline.
func mapSolvent(path *molpath.MolecularPath, residues []pp.Residue, mp molpath.MapParams, res int, dp density.Params) (nInPore, nInSample int, records []pp.SolventRecord, densitySpline *geometry.Spline1D, bandwidth float64) {
	lo, hi := path.Domain()
	if len(residues) == 0 {
		flat := zeroDensitySpline(lo, hi)
		return 0, 0, nil, flat, 0
	}

	cogMapped, err := path.MapSelection(residues, false, mp)
	if err != nil || len(cogMapped) == 0 {
		flat := zeroDensitySpline(lo, hi)
		return 0, 0, nil, flat, 0
	}

	xs := make([]float64, 0, len(cogMapped))
	for _, r := range residues {
		mapped, ok := cogMapped[r.ID]
		if !ok {
			continue
		}
		inPore := path.CheckIfInside([]molpath.Mapped{mapped}, 0, lo, hi)[0]
		if inPore {
			nInPore++
		}
		nInSample++
		cogPos := r.COG()
		records = append(records, pp.SolventRecord{
			ResID:    r.ID,
			S:        mapped.S,
			Rho:      mapped.Rho2,
			Phi:      mapped.Phi,
			InPore:   inPore,
			InSample: true,
			X:        cogPos[0],
			Y:        cogPos[1],
			Z:        cogPos[2],
		})
		xs = append(xs, mapped.S)
	}

	result, err := density.Estimate(xs, dp)
	if err != nil || result.Degenerate {
		flat := zeroDensitySpline(lo, hi)
		return nInPore, nInSample, records, flat, result.Bandwidth
	}

	numberDensity := toNumberDensity(result.Spline, path, nInSample, res)
	return nInPore, nInSample, records, numberDensity, result.Bandwidth
}

func toNumberDensity(fHat *geometry.Spline1D, path *molpath.MolecularPath, nSample, res int) *geometry.Spline1D {
	dLo, dHi := fHat.Domain()
	if res < 4 {
		res = 4
	}
	xs := make([]float64, res)
	ys := make([]float64, res)
	step := (dHi - dLo) / float64(res-1)
	for i := 0; i < res; i++ {
		s := dLo + float64(i)*step
		r := path.Radius(s)
		var n float64
		if r > 0 {
			n = fHat.Eval(s) * float64(nSample) / (math.Pi * r * r)
		}
		xs[i] = s
		ys[i] = n
	}
	degree := 3
	if res <= degree {
		degree = 1
	}
	sp, err := geometry.FitInterpolating(xs, ys, degree)
	if err != nil {
		return zeroDensitySpline(dLo, dHi)
	}
	return sp
}

func zeroDensitySpline(lo, hi float64) *geometry.Spline1D {
	if hi <= lo {
		hi = lo + 1
	}
	sp, err := geometry.FitInterpolating([]float64{lo, hi}, []float64{0, 0}, 1)
	if err != nil {
		panic(err)
	}
	return sp
}
