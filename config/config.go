/*
 * config.go, part of poreprofile.
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

// Package config holds the full option table of spec.md §6 as a flat Go
// struct, loaded from flags/env/file via viper the way
// turtacn-KeyIP-Intelligence's internal/config/loader.go builds its
// Config: defaults, then file, then flags/env override. The CLI parser
// itself is an external collaborator per spec.md §1, but the option table
// it must present is part of the contract, so this package gives that
// table a concrete home.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	pp "github.com/rmera/poreprofile"
)

// PathMethod is the string form of pathfinder.Method decoded from flags and
// config files; wire.go translates it into pathfinder.Method.
type PathMethod string

const (
	InPlaneOptim     PathMethod = "inplane_optim"
	NaiveCylindrical PathMethod = "naive_cylindrical"
)

// DensityMethod mirrors density.Method.
type DensityMethod string

const (
	Kernel    DensityMethod = "kernel"
	Histogram DensityMethod = "histogram"
)

// Config is the full configuration surface of spec.md §6's table, flat
// rather than nested, so each field maps to exactly one flag/env/file key.
type Config struct {
	// pf-*
	PfMethod        PathMethod `mapstructure:"pf-method"`
	PfProbeStep     float64    `mapstructure:"pf-probe-step"`
	PfMaxFreeDist   float64    `mapstructure:"pf-max-free-dist"`
	PfMaxProbeSteps int        `mapstructure:"pf-max-probe-steps"`
	PfCutoff        float64    `mapstructure:"pf-cutoff"`
	PfInitProbePos  []float64  `mapstructure:"pf-init-probe-pos"` // len 0 or 3
	PfSelIPP        string     `mapstructure:"pf-sel-ipp"`        // selection expression, passed through to the scene reader
	PfChanDirVec    []float64  `mapstructure:"pf-chan-dir-vec"`   // len 3
	PfVdWRDatabase  string     `mapstructure:"pf-vdwr-database"`  // path, or "" for the built-in element table
	PfVdWRJSON      bool       `mapstructure:"pf-vdwr-json"`
	PfVdWRFallback  float64    `mapstructure:"pf-vdwr-fallback"`
	PfVdWRHasFallback bool     `mapstructure:"pf-vdwr-has-fallback"`

	// sa-* (simulated annealing)
	SaSeed       int64   `mapstructure:"sa-seed"`
	SaMaxIter    int     `mapstructure:"sa-max-iter"`
	SaInitTemp   float64 `mapstructure:"sa-init-temp"`
	SaCoolingFac float64 `mapstructure:"sa-cooling-fac"`
	SaStep       float64 `mapstructure:"sa-step"`

	// nm-* (Nelder-Mead)
	NmMaxIter   int     `mapstructure:"nm-max-iter"`
	NmInitShift float64 `mapstructure:"nm-init-shift"`

	// pm-* (molecular path)
	PmPLMargin float64 `mapstructure:"pm-pl-margin"`
	PmDegree   int     `mapstructure:"pm-degree"`
	PmQuadTol  float64 `mapstructure:"pm-quad-tol"`
	PmSampleStep float64 `mapstructure:"pm-sample-step"`
	PmMapTol     float64 `mapstructure:"pm-map-tol"`
	PmExtrapDist float64 `mapstructure:"pm-extrap-dist"`
	PmAlign      bool    `mapstructure:"pm-align"`

	// de-* (solvent density estimator)
	DeMethod     DensityMethod `mapstructure:"de-method"`
	DeRes        int           `mapstructure:"de-res"`
	DeBandwidth  float64       `mapstructure:"de-bandwidth"`
	DeBWScale    float64       `mapstructure:"de-bw-scale"`
	DeEvalCutoff float64       `mapstructure:"de-eval-cutoff"`
	DeMaxEvalDist float64      `mapstructure:"de-max-eval-dist"`
	DeHistBinWidth float64     `mapstructure:"de-hist-bin-width"`
	DeBWMaxIter  int           `mapstructure:"de-bw-max-iter"`

	// hydrophob-*
	HydrophobDatabase    string  `mapstructure:"hydrophob-database"`
	HydrophobJSON        bool    `mapstructure:"hydrophob-json"`
	HydrophobFallback    float64 `mapstructure:"hydrophob-fallback"`
	HydrophobHasFallback bool    `mapstructure:"hydrophob-has-fallback"`
	HydrophobBandwidth   float64 `mapstructure:"hydrophob-bandwidth"`
	HydrophobAnchorPad   float64 `mapstructure:"hydrophob-anchor-pad"`

	// out-*
	OutFilename    string  `mapstructure:"out-filename"`
	OutNumPoints   int     `mapstructure:"out-num-points"`
	OutExtrapDist  float64 `mapstructure:"out-extrap-dist"`
	OutGzip        bool    `mapstructure:"out-gzip"`
	OutOBJ         string  `mapstructure:"out-obj"`  // "" disables the OBJ auxiliary output
	OutPDB         string  `mapstructure:"out-pdb"`  // "" disables the PDB auxiliary output

	// input, not part of spec's option table but needed to drive the CLI:
	// the path to the scene file the external trajectory reader stand-in
	// consumes (see cmd/poreprofile/scene.go).
	InScene string `mapstructure:"in-scene"`

	Workers int `mapstructure:"workers"`
}

// envPrefix mirrors turtacn-KeyIP-Intelligence's loader.go convention.
const envPrefix = "POREPROFILE"

// newViper builds a viper instance bound to POREPROFILE_* environment
// variables, with "-" in a key mapped to "_" so "pf-probe-step" resolves
// to POREPROFILE_PF_PROBE_STEP.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	return v
}

// Default returns the table's documented defaults.
func Default() *Config {
	return &Config{
		PfMethod:        InPlaneOptim,
		PfProbeStep:     0.5,
		PfMaxFreeDist:   15.0,
		PfMaxProbeSteps: 200,
		PfCutoff:        2.5,
		PfChanDirVec:    []float64{0, 0, 1},
		PfVdWRFallback:  1.5,
		PfVdWRHasFallback: true,

		SaSeed:       1,
		SaMaxIter:    1000,
		SaInitTemp:   2.0,
		SaCoolingFac: 0.95,
		SaStep:       0.5,

		NmMaxIter:   100,
		NmInitShift: 0.5,

		PmPLMargin:   0.0,
		PmDegree:     3,
		PmQuadTol:    1e-6,
		PmSampleStep: 0.25,
		PmMapTol:     1e-6,
		PmExtrapDist: 2.0,
		PmAlign:      true,

		DeMethod:      Kernel,
		DeRes:         200,
		DeBandwidth:   0,
		DeBWScale:     1,
		DeEvalCutoff:  5,
		DeMaxEvalDist: 0.25,
		DeBWMaxIter:   100,

		HydrophobFallback:    0,
		HydrophobHasFallback: true,
		HydrophobBandwidth:   0,

		OutFilename:   "poreprofile.jsonl",
		OutNumPoints:  200,
		OutExtrapDist: 1.0,

		Workers: 1,
	}
}

// Load builds a Config from, in increasing priority: the documented
// defaults, an optional YAML/JSON file at configPath, and POREPROFILE_*
// environment variables. Load binds no command-line flags; the caller
// (cmd/poreprofile) overlays flag values onto the returned Config
// afterwards.
func Load(configPath string) (*Config, error) {
	v := newViper()
	cfg := Default()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, pp.NewError(pp.KindConfig, "config: failed to read %q: %v", configPath, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, pp.NewError(pp.KindConfig, "config: failed to unmarshal configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces the positive-real and enum constraints of spec.md §7
// ("configuration: unknown enum, ... invalid positive-real constraint").
func (c *Config) Validate() error {
	switch c.PfMethod {
	case InPlaneOptim, NaiveCylindrical:
	default:
		return pp.NewError(pp.KindConfig, "config: pf-method must be inplane_optim or naive_cylindrical, got %q", c.PfMethod)
	}
	switch c.DeMethod {
	case Kernel, Histogram:
	default:
		return pp.NewError(pp.KindConfig, "config: de-method must be kernel or histogram, got %q", c.DeMethod)
	}
	if c.PfProbeStep <= 0 {
		return pp.NewError(pp.KindConfig, "config: pf-probe-step must be positive")
	}
	if c.PfMaxFreeDist <= 0 {
		return pp.NewError(pp.KindConfig, "config: pf-max-free-dist must be positive")
	}
	if c.PfMaxProbeSteps <= 0 {
		return pp.NewError(pp.KindConfig, "config: pf-max-probe-steps must be positive")
	}
	if len(c.PfChanDirVec) != 3 {
		return pp.NewError(pp.KindConfig, "config: pf-chan-dir-vec must have exactly 3 components")
	}
	if len(c.PfInitProbePos) != 0 && len(c.PfInitProbePos) != 3 {
		return pp.NewError(pp.KindConfig, "config: pf-init-probe-pos must have exactly 3 components when set")
	}
	if c.PmDegree < 1 {
		return pp.NewError(pp.KindConfig, "config: pm-degree must be >= 1")
	}
	if c.OutNumPoints < 2 {
		return pp.NewError(pp.KindConfig, "config: out-num-points must be >= 2")
	}
	if c.PfVdWRDatabase != "" {
		if _, err := os.Stat(c.PfVdWRDatabase); err != nil {
			return pp.NewError(pp.KindConfig, "config: pf-vdwr-database %q: %v", c.PfVdWRDatabase, err)
		}
	}
	if c.HydrophobDatabase != "" {
		if _, err := os.Stat(c.HydrophobDatabase); err != nil {
			return pp.NewError(pp.KindConfig, "config: hydrophob-database %q: %v", c.HydrophobDatabase, err)
		}
	}
	return nil
}

// String renders the option table for --help-adjacent diagnostics.
func (c *Config) String() string {
	return fmt.Sprintf("pf-method=%s de-method=%s out-filename=%s", c.PfMethod, c.DeMethod, c.OutFilename)
}
