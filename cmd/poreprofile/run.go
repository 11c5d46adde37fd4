/*
 * run.go, part of poreprofile.
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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	pp "github.com/rmera/poreprofile"
	"github.com/rmera/poreprofile/aggregate"
	"github.com/rmera/poreprofile/config"
	"github.com/rmera/poreprofile/ioformats/obj"
	"github.com/rmera/poreprofile/ioformats/pdb"
	"github.com/rmera/poreprofile/molpath"
	"github.com/rmera/poreprofile/pipeline"
	"github.com/rmera/poreprofile/recordstream"
)

// newRunCmd builds the `poreprofile run` subcommand: it registers every
// flag of spec.md §6's option table via pflag, lets viper overlay an
// optional --config file and POREPROFILE_* environment variables over the
// documented defaults, then drives the pipeline/aggregator/auxiliary-
// writer chain end to end. Modeled on the turtacn-KeyIP-Intelligence
// root.go persistentPreRun chain (config -> logger -> run), generalized
// from a single global RootOptions struct to the full per-subsystem
// option table this spec requires.
func newRunCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Analyze a pore-pathway scene and emit per-frame and aggregate profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, v)
		},
	}

	registerFlags(cmd, v)
	return cmd
}

func runRun(cmd *cobra.Command, v *viper.Viper) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(cfgPath, v)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.InScene == "" {
		return pp.NewError(pp.KindConfig, "config: in-scene is required")
	}

	frames, err := readAllFrames(cfg.InScene)
	if err != nil {
		return err
	}
	log.Info("scene loaded", zap.Int("frames", len(frames)), zap.String("path", cfg.InScene))

	pipeParams, err := config.BuildPipelineParams(cfg, log)
	if err != nil {
		return err
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	records, err := pipeline.RunConcurrent(context.Background(), pipeParams, frames, workers)
	if err != nil {
		return err
	}

	var frameBuf bytes.Buffer
	sw := recordstream.NewWriter(&frameBuf, false)
	for _, rec := range records {
		if err := sw.Write(rec); err != nil {
			return err
		}
	}
	if err := sw.Close(); err != nil {
		return err
	}

	aggResult, err := aggregate.Run(records, config.BuildAggregateParams(cfg))
	if err != nil {
		return err
	}

	if err := writeFinalOutput(cfg, aggResult, frameBuf.Bytes()); err != nil {
		return err
	}

	if cfg.OutOBJ != "" {
		if err := writeOBJ(cfg, records, pipeParams); err != nil {
			return err
		}
	}
	if cfg.OutPDB != "" {
		if err := writePDB(cfg, frames, aggResult); err != nil {
			return err
		}
	}

	log.Info("run complete", zap.String("out", cfg.OutFilename))
	return nil
}

func loadConfig(path string, v *viper.Viper) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	// pflag-bound values beat file/env/default per the cobra/pflag/viper
	// convention: BindPFlags was already called in registerFlags, so
	// re-unmarshal on top of the already-validated base config.
	if err := v.Unmarshal(cfg); err != nil {
		return nil, pp.NewError(pp.KindConfig, "config: flag overlay failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

// writeFinalOutput writes the aggregate summary as one compact JSON line
// followed by the per-frame JSON-lines stream appended verbatim, per
// spec.md §6 ("a single JSON document... with the per-frame JSON lines
// appended verbatim at the end").
func writeFinalOutput(cfg *config.Config, res *aggregate.Result, frameLines []byte) error {
	f, err := os.Create(cfg.OutFilename)
	if err != nil {
		return pp.NewError(pp.KindIO, "output: %v", err)
	}
	defer f.Close()

	var w io.Writer = f
	var gz *gzip.Writer
	if cfg.OutGzip {
		gz = gzip.NewWriter(f)
		w = gz
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(res); err != nil {
		return pp.NewError(pp.KindIO, "output: failed to encode aggregate summary: %v", err)
	}
	if _, err := w.Write(frameLines); err != nil {
		return pp.NewError(pp.KindIO, "output: failed to append per-frame records: %v", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return pp.NewError(pp.KindIO, "output: failed to close gzip stream: %v", err)
		}
	}
	return nil
}

// writeOBJ triangulates the pore surface of the *final* frame's molecular
// path, per spec.md §6's OBJ auxiliary output contract.
func writeOBJ(cfg *config.Config, records []pp.PerFrameRecord, p pipeline.Params) error {
	var last *pp.PerFrameRecord
	for i := len(records) - 1; i >= 0; i-- {
		if !records[i].PathSummary.Failed {
			last = &records[i]
			break
		}
	}
	if last == nil {
		return pp.NewError(pp.KindData, "output: no successful frame to render an OBJ surface from")
	}

	path, err := reconstructPath(*last, p)
	if err != nil {
		return err
	}
	f, err := os.Create(cfg.OutOBJ)
	if err != nil {
		return pp.NewError(pp.KindIO, "output: %v", err)
	}
	defer f.Close()
	return obj.WriteSurface(f, path, obj.Params{})
}

func reconstructPath(rec pp.PerFrameRecord, p pipeline.Params) (*molpath.MolecularPath, error) {
	return molpath.FromDescriptors(rec.MolPathCentreLineSpline, rec.MolPathRadiusSpline, p.MolPathDegree)
}

// writePDB writes the last frame's topology with each residue's B-factor
// set to its mean pore-facing indicator across all frames, per spec.md §6.
func writePDB(cfg *config.Config, frames []pipeline.FrameInput, res *aggregate.Result) error {
	if len(frames) == 0 {
		return pp.NewError(pp.KindData, "output: no frames to render a PDB from")
	}
	last := frames[len(frames)-1]

	bfactor := make(map[int]float64, len(res.ResidueStats))
	for id, rs := range res.ResidueStats {
		if rs.TotalFrames > 0 {
			bfactor[id] = float64(rs.PoreFacingFrames) / float64(rs.TotalFrames)
		}
	}

	f, err := os.Create(cfg.OutPDB)
	if err != nil {
		return pp.NewError(pp.KindIO, "output: %v", err)
	}
	defer f.Close()
	return pdb.Write(f, last.Sample.Particles, bfactor)
}
