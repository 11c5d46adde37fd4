/*
 * pdb.go, part of poreprofile.
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

// Package pdb writes topology coordinates with a per-residue B-factor, the
// second auxiliary output of spec.md §6: "coordinates from the topology
// with B-factor = mean pore-facing indicator per residue". Column layout
// follows gochem's files.go PdbWrite fixed-width ATOM/HETATM line, and the
// "one fixed-column line per atom, keyed by residue" structure generalizes
// top/groio.go's .gro writer to PDB's wider columns.
package pdb

import (
	"bufio"
	"fmt"
	"io"

	pp "github.com/rmera/poreprofile"
)

// Write emits one ATOM record per atom in atoms, in order, with the
// B-factor column set from bfactorByResID (missing residues get 0). No
// MODEL/ENDMDL wrapping is used since this is a single structure, not a
// trajectory.
func Write(w io.Writer, atoms []pp.Particle, bfactorByResID map[int]float64) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprint(bw, "REMARK     WRITTEN WITH POREPROFILE\n"); err != nil {
		return pp.NewError(pp.KindIO, "pdb: write failed: %v", err)
	}

	for _, a := range atoms {
		record := "ATOM"
		chain := a.Chain
		if chain == "" {
			chain = " "
		}
		b := bfactorByResID[a.ResID]
		var err error
		if len(a.AtomName) < 4 {
			_, err = fmt.Fprintf(bw, "%-6s%5d  %-3s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n",
				record, a.Index, a.AtomName, a.ResName, chain, a.ResID,
				a.Pos[0], a.Pos[1], a.Pos[2], 1.0, b, elementGuess(a.AtomName))
		} else {
			_, err = fmt.Fprintf(bw, "%-6s%5d %4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n",
				record, a.Index, a.AtomName, a.ResName, chain, a.ResID,
				a.Pos[0], a.Pos[1], a.Pos[2], 1.0, b, elementGuess(a.AtomName))
		}
		if err != nil {
			return pp.NewError(pp.KindIO, "pdb: write failed: %v", err)
		}
	}

	if _, err := fmt.Fprint(bw, "END\n"); err != nil {
		return pp.NewError(pp.KindIO, "pdb: write failed: %v", err)
	}
	return bw.Flush()
}

// elementGuess strips a leading digit (common in GROMACS atom naming, e.g.
// "1HB1") and returns the first one or two letters, mirroring radii's
// guessElement heuristic without importing that package just for this.
func elementGuess(atomName string) string {
	name := atomName
	for len(name) > 0 && name[0] >= '0' && name[0] <= '9' {
		name = name[1:]
	}
	if len(name) == 0 {
		return ""
	}
	if len(name) >= 2 {
		return name[:2]
	}
	return name[:1]
}
