/*
 * finder.go, part of poreprofile.
 *
 * The probe-based path finder of spec.md §4.1: locates a maximum-inscribed
 * -sphere curve through a particle cloud by repeated 2-D radius
 * maximization in planes perpendicular to a search direction.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package pathfinder

import (
	pp "github.com/rmera/poreprofile"
	"github.com/rmera/poreprofile/internal/vec3"
	"github.com/rmera/poreprofile/neighbor"
	"github.com/rmera/poreprofile/optim"
)

// Method selects the path-finding strategy (spec.md §6 pf-method).
type Method int

const (
	InPlaneOptim Method = iota
	NaiveCylindrical
)

// Params configures the finder (spec.md §6 pf-* options).
type Params struct {
	Method        Method
	ProbeStep     float64 // delta
	MaxFreeDist   float64 // R_max
	MaxProbeSteps int     // N_max
	Cutoff        float64 // c
	Optim         optim.Params
}

// Finder produces an ordered sequence of ProbeSamples spanning the channel
// from one membrane side to the other, given a starting probe position, a
// unit channel direction, a particle cloud and a neighbor query over it.
// The finder owns its optimizer and borrows the neighbor query and particle
// data, per spec.md §3's tree-shaped ownership rule.
type Finder struct {
	Params Params
}

func New(p Params) *Finder { return &Finder{Params: p} }

// Run executes the configured strategy. dir is normalized internally.
func (f *Finder) Run(p0, dir vec3.Vec, positions []vec3.Vec, radii []float64, query neighbor.Query) ([]pp.ProbeSample, error) {
	dir = dir.Unit()
	switch f.Params.Method {
	case NaiveCylindrical:
		return f.runNaive(p0, dir), nil
	default:
		return f.runInPlaneOptim(p0, dir, positions, radii, query)
	}
}

func (f *Finder) runInPlaneOptim(p0, dir vec3.Vec, positions []vec3.Vec, radii []float64, query neighbor.Query) ([]pp.ProbeSample, error) {
	maxVdwR := maxRadius(radii)

	optimizeAt := func(p vec3.Vec) (vec3.Vec, float64, bool) {
		u, v := vec3.Basis(dir)
		obj := planeCostOracle(p, u, v, positions, radii, query, f.Params.MaxFreeDist, maxVdwR, f.Params.Cutoff)
		best, ok := optim.Maximize(obj, []float64{0, 0}, f.Params.Optim)
		if !ok {
			return vec3.Vec{}, 0, false
		}
		centre := p.Add(u.Scale(best.X[0])).Add(v.Scale(best.X[1]))
		return centre, best.Cost, true
	}

	c0, r0, ok := optimizeAt(p0)
	if !ok || r0 <= 0 {
		return nil, pp.NewError(pp.KindData, "pathfinder: seed optimization at initial probe position failed to improve over the initial guess")
	}

	samples := []pp.ProbeSample{{Centre: c0, Radius: r0}}

	// forward extension
	prev := c0
	for k := 1; k <= f.Params.MaxProbeSteps; k++ {
		candidate := prev.Add(dir.Scale(f.Params.ProbeStep))
		c, r, ok := optimizeAt(candidate)
		if !ok {
			break
		}
		samples = append(samples, pp.ProbeSample{Centre: c, Radius: r})
		prev = c
		if r >= f.Params.MaxFreeDist {
			break
		}
	}

	// backward extension, prepended
	backDir := dir.Scale(-1)
	prev = c0
	backward := make([]pp.ProbeSample, 0)
	for k := 1; k <= f.Params.MaxProbeSteps; k++ {
		candidate := prev.Add(backDir.Scale(f.Params.ProbeStep))
		c, r, ok := optimizeAt(candidate)
		if !ok {
			break
		}
		backward = append(backward, pp.ProbeSample{Centre: c, Radius: r})
		prev = c
		if r >= f.Params.MaxFreeDist {
			break
		}
	}
	for i := len(backward) - 1; i >= 0; i-- {
		samples = append([]pp.ProbeSample{backward[i]}, samples...)
	}

	assignArcPositions(samples)
	return samples, nil
}

// runNaive implements the "naive cylindrical" baseline of spec.md §4.1: no
// optimization, fixed-step samples of constant radius R_max, used for
// debugging or as a trivial baseline.
func (f *Finder) runNaive(p0, dir vec3.Vec) []pp.ProbeSample {
	samples := []pp.ProbeSample{{Centre: p0, Radius: f.Params.MaxFreeDist}}
	prev := p0
	for k := 1; k <= f.Params.MaxProbeSteps; k++ {
		prev = prev.Add(dir.Scale(f.Params.ProbeStep))
		samples = append(samples, pp.ProbeSample{Centre: prev, Radius: f.Params.MaxFreeDist})
	}
	prev = p0
	backward := make([]pp.ProbeSample, 0, f.Params.MaxProbeSteps)
	for k := 1; k <= f.Params.MaxProbeSteps; k++ {
		prev = prev.Sub(dir.Scale(f.Params.ProbeStep))
		backward = append(backward, pp.ProbeSample{Centre: prev, Radius: f.Params.MaxFreeDist})
	}
	for i := len(backward) - 1; i >= 0; i-- {
		samples = append([]pp.ProbeSample{backward[i]}, samples...)
	}
	assignArcPositions(samples)
	return samples
}

// assignArcPositions stamps each sample's S field with its cumulative
// chord length along the concatenated sequence (spec.md §4.1 step 4).
func assignArcPositions(samples []pp.ProbeSample) {
	for k := 1; k < len(samples); k++ {
		samples[k].S = samples[k-1].S + vec3.Dist(samples[k-1].Centre, samples[k].Centre)
	}
}
