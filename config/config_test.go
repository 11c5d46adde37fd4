/*
 * config_test.go, part of poreprofile.
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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pp "github.com/rmera/poreprofile"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsUnknownMethod(t *testing.T) {
	cfg := Default()
	cfg.PfMethod = "not_a_method"
	err := cfg.Validate()
	require.Error(t, err)
	ppErr, ok := err.(pp.Error)
	require.True(t, ok)
	assert.Equal(t, pp.KindConfig, ppErr.Kind())
}

func TestValidateRejectsNonPositiveProbeStep(t *testing.T) {
	cfg := Default()
	cfg.PfProbeStep = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsWrongSizedVectors(t *testing.T) {
	cfg := Default()
	cfg.PfChanDirVec = []float64{0, 1}
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.PfInitProbePos = []float64{1, 2}
	assert.Error(t, cfg.Validate())
}

func TestLoadOverlaysFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poreprofile.yaml")
	yaml := "pf-probe-step: 0.1\nout-num-points: 50\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.PfProbeStep)
	assert.Equal(t, 50, cfg.OutNumPoints)
	// Untouched fields keep their documented defaults.
	assert.Equal(t, InPlaneOptim, cfg.PfMethod)
}

func TestLoadRejectsInvalidOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poreprofile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pf-method: bogus\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestBuildPipelineParamsUsesBuiltInTables(t *testing.T) {
	cfg := Default()
	p, err := BuildPipelineParams(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, p.VdWTable)
	require.NotNil(t, p.HydrophobTable)
	assert.Equal(t, cfg.PmAlign, p.Align)
	assert.Equal(t, cfg.PfProbeStep, p.Finder.ProbeStep)
}
