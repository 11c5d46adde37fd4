/*
 * obj.go, part of poreprofile.
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

// Package obj writes a Wavefront OBJ mesh triangulating a molecular
// pathway's pore surface, the auxiliary output of spec.md §6. Grounded on
// original_source/src/io/wavefront_obj_io.cpp's WavefrontObjExporter (a
// vertex list plus named face groups, written as plain "v"/"g"/"f" lines),
// adapted from gmx::RVec vertices to this repository's vec3.Vec and from a
// fstream writer to an io.Writer.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"math"

	pp "github.com/rmera/poreprofile"
	"github.com/rmera/poreprofile/internal/vec3"
	"github.com/rmera/poreprofile/molpath"
)

// DefaultRingsPerUnitLength and DefaultPointsPerRing control the
// triangulation density.
const (
	DefaultRingsPerUnitLength = 2.0
	DefaultPointsPerRing      = 16
)

// Params configures the pore-surface triangulation.
type Params struct {
	RingsPerUnitLength float64
	PointsPerRing      int
}

// WriteSurface triangulates the pore surface of path (a tube of radius
// R(s) around the centre-line C(s)) and writes it as an OBJ mesh to w.
func WriteSurface(w io.Writer, path *molpath.MolecularPath, p Params) error {
	if p.RingsPerUnitLength <= 0 {
		p.RingsPerUnitLength = DefaultRingsPerUnitLength
	}
	if p.PointsPerRing < 3 {
		p.PointsPerRing = DefaultPointsPerRing
	}

	lo, hi := path.Domain()
	nRings := int(math.Ceil((hi-lo)*p.RingsPerUnitLength)) + 1
	if nRings < 2 {
		nRings = 2
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "# produced by poreprofile"); err != nil {
		return pp.NewError(pp.KindIO, "obj: write failed: %v", err)
	}
	fmt.Fprintln(bw)

	for ring := 0; ring < nRings; ring++ {
		s := lo + (hi-lo)*float64(ring)/float64(nRings-1)
		centre := path.Centre(s)
		_, normal, binormal := frenetAt(path, s)
		r := path.Radius(s)
		for k := 0; k < p.PointsPerRing; k++ {
			theta := 2 * math.Pi * float64(k) / float64(p.PointsPerRing)
			v := centre.Add(normal.Scale(r * math.Cos(theta))).Add(binormal.Scale(r * math.Sin(theta)))
			if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v[0], v[1], v[2]); err != nil {
				return pp.NewError(pp.KindIO, "obj: write failed: %v", err)
			}
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "g pore_surface")
	for ring := 0; ring < nRings-1; ring++ {
		base := ring * p.PointsPerRing
		next := base + p.PointsPerRing
		for k := 0; k < p.PointsPerRing; k++ {
			k2 := (k + 1) % p.PointsPerRing
			// two triangles per quad, 1-based OBJ vertex indices.
			a, b, c, d := base+k+1, base+k2+1, next+k2+1, next+k+1
			if _, err := fmt.Fprintf(bw, "f %d %d %d\n", a, b, c); err != nil {
				return pp.NewError(pp.KindIO, "obj: write failed: %v", err)
			}
			if _, err := fmt.Fprintf(bw, "f %d %d %d\n", a, c, d); err != nil {
				return pp.NewError(pp.KindIO, "obj: write failed: %v", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return pp.NewError(pp.KindIO, "obj: write failed: %v", err)
	}
	return nil
}

func frenetAt(path *molpath.MolecularPath, s float64) (tangent, normal, binormal vec3.Vec) {
	return path.FrenetFrame(s)
}
