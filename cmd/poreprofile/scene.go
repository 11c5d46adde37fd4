/*
 * scene.go, part of poreprofile.
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
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	pp "github.com/rmera/poreprofile"
	"github.com/rmera/poreprofile/internal/vec3"
	"github.com/rmera/poreprofile/pipeline"
)

// The trajectory reader and particle-selection engine are external
// collaborators (spec.md §1): this package only needs something that
// hands it one pipeline.FrameInput per frame. sceneReader is that
// adapter's concrete realization for standalone use of the CLI — a line-
// delimited JSON scene format, one line per frame, mirroring
// recordstream's own line-delimited convention rather than inventing a
// new I/O style.
type sceneAtom struct {
	Index    int       `json:"index"`
	ResID    int       `json:"resId"`
	ResName  string    `json:"resName"`
	AtomName string    `json:"atomName"`
	Chain    string    `json:"chain"`
	CA       bool      `json:"ca"`
	Pos      [3]float64 `json:"pos"`
	Mass     float64   `json:"mass"`
}

type sceneFrame struct {
	Timestamp        float64     `json:"timestamp"`
	Sample           []sceneAtom `json:"sample"`
	InitProbe        []sceneAtom `json:"initProbe"`
	PoreResidueIDs   []int       `json:"poreResidueIds"`
	SolventResidueIDs []int      `json:"solventResidueIds"`
}

type sceneReader struct {
	dec *json.Decoder
	f   io.Closer
}

func openScene(path string) (*sceneReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pp.NewError(pp.KindIO, "scene: %v", err)
	}
	return &sceneReader{dec: json.NewDecoder(bufio.NewReader(f)), f: f}, nil
}

func (r *sceneReader) Close() error { return r.f.Close() }

// Next decodes the next frame, returning io.EOF when the scene is exhausted.
func (r *sceneReader) Next() (pipeline.FrameInput, error) {
	var sf sceneFrame
	if err := r.dec.Decode(&sf); err != nil {
		if err == io.EOF {
			return pipeline.FrameInput{}, io.EOF
		}
		return pipeline.FrameInput{}, pp.NewError(pp.KindIO, "scene: malformed frame: %v", err)
	}

	sample := toSelection(sf.Sample)
	initProbe := sample
	if len(sf.InitProbe) > 0 {
		initProbe = toSelection(sf.InitProbe)
	}

	byID := map[int][]pp.Particle{}
	order := []int{}
	for _, a := range sf.Sample {
		if _, ok := byID[a.ResID]; !ok {
			order = append(order, a.ResID)
		}
		byID[a.ResID] = append(byID[a.ResID], toParticle(a))
	}
	residueOf := func(id int) pp.Residue {
		atoms := byID[id]
		var name, chain string
		if len(atoms) > 0 {
			name, chain = atoms[0].ResName, atoms[0].Chain
		}
		return pp.Residue{ID: id, Name: name, Chain: chain, Atoms: atoms}
	}

	poreResidues := make([]pp.Residue, 0, len(sf.PoreResidueIDs))
	for _, id := range sf.PoreResidueIDs {
		poreResidues = append(poreResidues, residueOf(id))
	}
	solventResidues := make([]pp.Residue, 0, len(sf.SolventResidueIDs))
	for _, id := range sf.SolventResidueIDs {
		solventResidues = append(solventResidues, residueOf(id))
	}

	return pipeline.FrameInput{
		Timestamp:          sf.Timestamp,
		Sample:              sample,
		InitProbeSelection:  initProbe,
		PoreResidues:        poreResidues,
		SolventResidues:     solventResidues,
	}, nil
}

func toParticle(a sceneAtom) pp.Particle {
	return pp.Particle{
		Index: a.Index, ResID: a.ResID, ResName: strings.ToUpper(a.ResName),
		AtomName: strings.ToUpper(a.AtomName), Chain: a.Chain, CA: a.CA,
		Pos: vec3.New(a.Pos[0], a.Pos[1], a.Pos[2]), Mass: a.Mass,
	}
}

func toSelection(atoms []sceneAtom) pp.Selection {
	out := make([]pp.Particle, len(atoms))
	for i, a := range atoms {
		out[i] = toParticle(a)
	}
	return pp.Selection{Particles: out}
}

// readAllFrames drains a scene file into memory, since pipeline.RunConcurrent
// operates over an already-known frame slice (see pipeline/concurrent.go).
func readAllFrames(path string) ([]pipeline.FrameInput, error) {
	r, err := openScene(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var frames []pipeline.FrameInput
	for {
		fr, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		frames = append(frames, fr)
	}
	return frames, nil
}
