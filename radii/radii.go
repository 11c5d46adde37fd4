/*
 * radii.go, part of poreprofile.
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

// Package radii loads the van-der-Waals radius and hydrophobicity lookup
// tables used by the per-frame pipeline (spec.md §4.5, §6's pf-vdwr-database
// and hydrophob-database options). Both are external collaborators per
// spec.md §1 ("CLI parser and van-der-Waals/hydrophobicity database
// loaders" are out of scope for the core), but the core still needs a
// concrete adapter to exercise; this one is grounded on the teacher's
// element-keyed atomicdata.go tables, generalized to JSON-overridable,
// residue/atom-keyed lookup with a configurable fallback.
package radii

import (
	"encoding/json"
	"io"
	"strings"

	pp "github.com/rmera/poreprofile"
)

// Table is an immutable, shared-read-only (residue name, atom name)->value
// lookup with an optional scalar fallback, per spec.md §5's "shared
// resources" rule.
type Table struct {
	byResAtom   map[string]map[string]float64
	fallback    float64
	hasFallback bool
}

// NewTable builds an empty table backed only by its fallback.
func NewTable(fallback float64, hasFallback bool) *Table {
	return &Table{byResAtom: map[string]map[string]float64{}, fallback: fallback, hasFallback: hasFallback}
}

// LoadJSON reads a {"RESNAME": {"ATOMNAME": value}} document and returns a
// Table backed by it, falling back to fallback when hasFallback is true.
func LoadJSON(r io.Reader, fallback float64, hasFallback bool) (*Table, error) {
	var raw map[string]map[string]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, pp.NewError(pp.KindIO, "radii: malformed JSON database: %v", err)
	}
	return &Table{byResAtom: raw, fallback: fallback, hasFallback: hasFallback}, nil
}

// Lookup returns the value for (resName, atomName), falling back to the
// table's scalar fallback, or failing with a KindData error, per spec.md
// §7 ("radius lookup miss with no fallback").
func (t *Table) Lookup(resName, atomName string) (float64, error) {
	if v, ok := t.lookupWithWildcard(resName, atomName); ok {
		return v, nil
	}
	if t.hasFallback {
		return t.fallback, nil
	}
	return 0, pp.NewError(pp.KindData, "radii: no entry for residue %q atom %q and no fallback configured", resName, atomName)
}

// DefaultVdWTable returns a van-der-Waals radius table derived from the
// teacher's element-keyed table (atomicdata.go's symbolVdwrad), guessing
// the element from the atom name's leading letters per common PDB/GROMACS
// naming convention (numeric/H-disambiguation prefixes stripped).
func DefaultVdWTable(fallback float64, hasFallback bool) *Table {
	t := NewTable(fallback, hasFallback)
	t.byResAtom = map[string]map[string]float64{wildcardResidue: elementTableFromSymbols(symbolVdwrad)}
	return t
}

// wildcardResidue is the sentinel residue key consulted when no
// residue-specific entry exists, so a single element-keyed table can serve
// every residue.
const wildcardResidue = "*"

func (t *Table) lookupWithWildcard(resName, atomName string) (float64, bool) {
	key := strings.ToUpper(resName)
	atom := strings.ToUpper(atomName)
	if byAtom, ok := t.byResAtom[key]; ok {
		if v, ok := byAtom[atom]; ok {
			return v, true
		}
	}
	if byAtom, ok := t.byResAtom[wildcardResidue]; ok {
		if v, ok := byAtom[guessElement(atomName)]; ok {
			return v, true
		}
	}
	return 0, false
}

// guessElement strips leading digits (common in GROMACS atom naming, e.g.
// "1HB2") and returns the first one or two letters, matching whichever
// known element symbol is longer.
func guessElement(atomName string) string {
	name := strings.TrimLeft(strings.ToUpper(atomName), "0123456789")
	if len(name) == 0 {
		return ""
	}
	if len(name) >= 2 {
		two := name[:2]
		if _, ok := symbolVdwrad[twoLetterCanonical(two)]; ok {
			return twoLetterCanonical(two)
		}
	}
	return name[:1]
}

// twoLetterCanonical renders a two-letter element code (first upper,
// second lower) for comparison against the teacher's symbol tables.
func twoLetterCanonical(s string) string {
	if len(s) != 2 {
		return s
	}
	return string(s[0]) + strings.ToLower(string(s[1]))
}

func elementTableFromSymbols(symbols map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(symbols))
	for sym, v := range symbols {
		out[strings.ToUpper(sym)] = v
	}
	return out
}
