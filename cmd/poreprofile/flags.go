/*
 * flags.go, part of poreprofile.
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

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rmera/poreprofile/config"
)

// registerFlags declares one pflag per entry of spec.md §6's option table
// on cmd, then binds them into v so viper's precedence (flag > env > file >
// default) governs the final Config, per turtacn-KeyIP-Intelligence's
// root.go PersistentFlags/BindPFlags convention.
func registerFlags(cmd *cobra.Command, v *viper.Viper) {
	f := cmd.Flags()
	def := config.Default()

	f.String("config", "", "path to a YAML/JSON config file overlaying the defaults")
	f.String("in-scene", def.InScene, "path to the scene file driving this run")
	f.Int("workers", def.Workers, "number of frames analyzed concurrently")

	f.String("pf-method", string(def.PfMethod), "path finder strategy: inplane_optim or naive_cylindrical")
	f.Float64("pf-probe-step", def.PfProbeStep, "probe displacement along the channel direction")
	f.Float64("pf-max-free-dist", def.PfMaxFreeDist, "distance bound terminating probe extension")
	f.Int("pf-max-probe-steps", def.PfMaxProbeSteps, "maximum number of probe extension steps")
	f.Float64("pf-cutoff", def.PfCutoff, "neighbor query cutoff added to the largest van der Waals radius")
	f.Float64Slice("pf-init-probe-pos", nil, "explicit initial probe position (3 comma-separated values)")
	f.String("pf-sel-ipp", "", "selection expression identifying the initial-probe-position group (passed to the scene reader)")
	f.Float64Slice("pf-chan-dir-vec", []float64{0, 0, 1}, "channel direction vector, normalized internally")
	f.String("pf-vdwr-database", def.PfVdWRDatabase, "path to a JSON van der Waals radius database, empty for the built-in element table")
	f.Bool("pf-vdwr-json", def.PfVdWRJSON, "the radius database file is JSON (currently the only supported format)")
	f.Float64("pf-vdwr-fallback", def.PfVdWRFallback, "fallback van der Waals radius for unmatched (residue, atom) pairs")
	f.Bool("pf-vdwr-has-fallback", def.PfVdWRHasFallback, "enable the van der Waals radius fallback")

	f.Int64("sa-seed", def.SaSeed, "simulated annealing PRNG seed")
	f.Int("sa-max-iter", def.SaMaxIter, "simulated annealing iteration bound")
	f.Float64("sa-init-temp", def.SaInitTemp, "simulated annealing initial temperature")
	f.Float64("sa-cooling-fac", def.SaCoolingFac, "simulated annealing per-iteration cooling factor")
	f.Float64("sa-step", def.SaStep, "simulated annealing isotropic step length")

	f.Int("nm-max-iter", def.NmMaxIter, "Nelder-Mead iteration bound")
	f.Float64("nm-init-shift", def.NmInitShift, "Nelder-Mead initial simplex edge length")

	f.Float64("pm-pl-margin", def.PmPLMargin, "pore-lining containment margin")
	f.Int("pm-degree", def.PmDegree, "molecular path spline degree")
	f.Float64("pm-quad-tol", def.PmQuadTol, "composite Simpson tolerance for arc-length/volume integrals")
	f.Float64("pm-sample-step", def.PmSampleStep, "grid step of the minimum-radius scan along the path")
	f.Float64("pm-map-tol", def.PmMapTol, "curvilinear-coordinate mapping convergence tolerance")
	f.Float64("pm-extrap-dist", def.PmExtrapDist, "maximum distance outside [s_lo,s_hi] a point may still be mapped")
	f.Bool("pm-align", def.PmAlign, "shift each frame's path so the initial probe position maps to the origin")

	f.String("de-method", string(def.DeMethod), "solvent density estimator: kernel or histogram")
	f.Int("de-res", def.DeRes, "resolution of the raw-to-number-density resampling grid")
	f.Float64("de-bandwidth", def.DeBandwidth, "solvent KDE bandwidth, <=0 selects the AMISE-optimal value")
	f.Float64("de-bw-scale", def.DeBWScale, "multiplier applied to the selected/given bandwidth")
	f.Float64("de-eval-cutoff", def.DeEvalCutoff, "KDE evaluation range padding, in bandwidths")
	f.Float64("de-max-eval-dist", def.DeMaxEvalDist, "maximum spacing of the KDE evaluation grid")
	f.Float64("de-hist-bin-width", def.DeHistBinWidth, "histogram bin width, when de-method=histogram")
	f.Int("de-bw-max-iter", def.DeBWMaxIter, "AMISE bandwidth solver iteration bound")

	f.String("hydrophob-database", def.HydrophobDatabase, "path to a JSON hydrophobicity database, empty for the built-in Kyte-Doolittle scale")
	f.Bool("hydrophob-json", def.HydrophobJSON, "the hydrophobicity database file is JSON (currently the only supported format)")
	f.Float64("hydrophob-fallback", def.HydrophobFallback, "fallback hydrophobicity value for unmatched residues")
	f.Bool("hydrophob-has-fallback", def.HydrophobHasFallback, "enable the hydrophobicity fallback")
	f.Float64("hydrophob-bandwidth", def.HydrophobBandwidth, "pore-lining/pore-facing KDE bandwidth, <=0 selects the AMISE-optimal value")
	f.Float64("hydrophob-anchor-pad", def.HydrophobAnchorPad, "zero-weight anchor distance past [s_lo,s_hi], <=0 defaults to pf-probe-step/2")

	f.String("out-filename", def.OutFilename, "final aggregate output file")
	f.Int("out-num-points", def.OutNumPoints, "common support grid resolution")
	f.Float64("out-extrap-dist", def.OutExtrapDist, "extrapolation margin added to the common support grid")
	f.Bool("out-gzip", def.OutGzip, "gzip the whole output file (aggregate summary and per-frame JSON lines)")
	f.String("out-obj", def.OutOBJ, "OBJ pore-surface output path, empty disables it")
	f.String("out-pdb", def.OutPDB, "PDB coordinates-with-B-factor output path, empty disables it")

	v.BindPFlags(f)
}
