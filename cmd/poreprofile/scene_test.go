/*
 * scene_test.go, part of poreprofile.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScene(t *testing.T, lines ...string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.jsonl")
	var content string
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadAllFramesParsesEachLine(t *testing.T) {
	path := writeScene(t,
		`{"timestamp":0,"sample":[{"index":1,"resId":1,"resName":"wat","atomName":"ow","pos":[0,0,0],"mass":16}],"poreResidueIds":[1]}`,
		`{"timestamp":1,"sample":[{"index":1,"resId":1,"resName":"wat","atomName":"ow","pos":[1,0,0],"mass":16}]}`,
	)

	frames, err := readAllFrames(path)
	require.NoError(t, err)
	require.Len(t, frames, 2)

	assert.Equal(t, 0.0, frames[0].Timestamp)
	require.Len(t, frames[0].Sample.Particles, 1)
	assert.Equal(t, "WAT", frames[0].Sample.Particles[0].ResName)
	assert.Equal(t, "OW", frames[0].Sample.Particles[0].AtomName)
	require.Len(t, frames[0].PoreResidues, 1)
	assert.Equal(t, 1, frames[0].PoreResidues[0].ID)

	assert.Equal(t, 1.0, frames[1].Timestamp)
	assert.Empty(t, frames[1].PoreResidues)
}

func TestReadAllFramesRejectsMalformedLine(t *testing.T) {
	path := writeScene(t, `{"timestamp":0,`)
	_, err := readAllFrames(path)
	assert.Error(t, err)
}

func TestReadAllFramesMissingFile(t *testing.T) {
	_, err := readAllFrames("/nonexistent/scene.jsonl")
	assert.Error(t, err)
}

func TestInitProbeDefaultsToSample(t *testing.T) {
	path := writeScene(t,
		`{"timestamp":0,"sample":[{"index":1,"resId":1,"resName":"wat","atomName":"ow","pos":[0,0,0],"mass":16}]}`,
	)
	frames, err := readAllFrames(path)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, frames[0].Sample.Particles, frames[0].InitProbeSelection.Particles)
}
