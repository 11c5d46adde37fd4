/*
 * wire.go, part of poreprofile.
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

package config

import (
	"os"

	"go.uber.org/zap"

	"github.com/rmera/poreprofile/aggregate"
	"github.com/rmera/poreprofile/density"
	"github.com/rmera/poreprofile/internal/vec3"
	"github.com/rmera/poreprofile/molpath"
	"github.com/rmera/poreprofile/optim"
	"github.com/rmera/poreprofile/pathfinder"
	"github.com/rmera/poreprofile/pipeline"
	"github.com/rmera/poreprofile/radii"
)

// BuildPipelineParams translates the flat option table into the
// pipeline.Params the finder/molpath/density stack actually consumes,
// loading the van-der-Waals and hydrophobicity tables named by
// pf-vdwr-database/hydrophob-database.
func BuildPipelineParams(c *Config, log *zap.Logger) (pipeline.Params, error) {
	vdw, err := loadVdWTable(c)
	if err != nil {
		return pipeline.Params{}, err
	}
	hydro, err := loadHydrophobTable(c)
	if err != nil {
		return pipeline.Params{}, err
	}

	var method pathfinder.Method
	switch c.PfMethod {
	case NaiveCylindrical:
		method = pathfinder.NaiveCylindrical
	default:
		method = pathfinder.InPlaneOptim
	}

	var initProbe *vec3.Vec
	if len(c.PfInitProbePos) == 3 {
		p := vec3.New(c.PfInitProbePos[0], c.PfInitProbePos[1], c.PfInitProbePos[2])
		initProbe = &p
	}

	return pipeline.Params{
		Finder: pathfinder.Params{
			Method:        method,
			ProbeStep:     c.PfProbeStep,
			MaxFreeDist:   c.PfMaxFreeDist,
			MaxProbeSteps: c.PfMaxProbeSteps,
			Cutoff:        c.PfCutoff,
			Optim: optim.Params{
				Anneal: optim.AnnealParams{
					Seed:          c.SaSeed,
					MaxIter:       c.SaMaxIter,
					InitTemp:      c.SaInitTemp,
					CoolingFactor: c.SaCoolingFac,
					StepLength:    c.SaStep,
				},
				Simplex: optim.SimplexParams{
					MaxIter:   c.NmMaxIter,
					InitShift: c.NmInitShift,
				},
			},
		},
		ChannelDir:   vec3.New(c.PfChanDirVec[0], c.PfChanDirVec[1], c.PfChanDirVec[2]),
		InitProbePos: initProbe,
		Align:        c.PmAlign,

		MolPathDegree: c.PmDegree,
		QuadTol:       c.PmQuadTol,
		MapParams: molpath.MapParams{
			SampleStep: c.PmSampleStep,
			MapTol:     c.PmMapTol,
			ExtrapDist: c.PmExtrapDist,
		},
		PoreLiningMargin: c.PmPLMargin,

		VdWTable:       vdw,
		HydrophobTable: hydro,

		SolventDensity:     densityParams(c, c.DeBandwidth),
		SolventDensityRes:  c.DeRes,
		Hydrophobicity:     densityParams(c, c.HydrophobBandwidth),
		HydrophobAnchorPad: c.HydrophobAnchorPad,

		Logger: log,
	}, nil
}

func densityParams(c *Config, bandwidth float64) density.Params {
	method := density.Kernel
	if c.DeMethod == Histogram {
		method = density.Histogram
	}
	return density.Params{
		Method:       method,
		Bandwidth:    bandwidth,
		BWScale:      c.DeBWScale,
		EvalCutoff:   c.DeEvalCutoff,
		MaxEvalDist:  c.DeMaxEvalDist,
		HistBinWidth: c.DeHistBinWidth,
		BWMaxIter:    c.DeBWMaxIter,
	}
}

func loadVdWTable(c *Config) (*radii.Table, error) {
	if c.PfVdWRDatabase == "" {
		return radii.DefaultVdWTable(c.PfVdWRFallback, c.PfVdWRHasFallback), nil
	}
	f, err := os.Open(c.PfVdWRDatabase)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return radii.LoadJSON(f, c.PfVdWRFallback, c.PfVdWRHasFallback)
}

func loadHydrophobTable(c *Config) (*radii.HydrophobicityTable, error) {
	if c.HydrophobDatabase == "" {
		return radii.DefaultHydrophobicityTable(c.HydrophobFallback, c.HydrophobHasFallback), nil
	}
	f, err := os.Open(c.HydrophobDatabase)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return radii.LoadHydrophobicityJSON(f, c.HydrophobFallback, c.HydrophobHasFallback)
}

// BuildAggregateParams translates the out-* options into aggregate.Params.
func BuildAggregateParams(c *Config) aggregate.Params {
	return aggregate.Params{
		OutNumPoints:  c.OutNumPoints,
		OutExtrapDist: c.OutExtrapDist,
		Degree:        c.PmDegree,
	}
}
