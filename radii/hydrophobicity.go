/*
 * hydrophobicity.go, part of poreprofile.
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

package radii

import (
	"encoding/json"
	"io"
	"strings"

	pp "github.com/rmera/poreprofile"
)

// HydrophobicityTable is a residue-name-keyed lookup used to build the
// pore-lining/pore-facing hydrophobicity series of spec.md §4.5.
type HydrophobicityTable struct {
	byRes       map[string]float64
	fallback    float64
	hasFallback bool
}

// DefaultHydrophobicityTable returns a table seeded with the Kyte &
// Doolittle scale.
func DefaultHydrophobicityTable(fallback float64, hasFallback bool) *HydrophobicityTable {
	byRes := make(map[string]float64, len(kyteDoolittleHydrophobicity))
	for k, v := range kyteDoolittleHydrophobicity {
		byRes[k] = v
	}
	return &HydrophobicityTable{byRes: byRes, fallback: fallback, hasFallback: hasFallback}
}

// LoadHydrophobicityJSON reads a {"RESNAME": value} document.
func LoadHydrophobicityJSON(r io.Reader, fallback float64, hasFallback bool) (*HydrophobicityTable, error) {
	var raw map[string]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, pp.NewError(pp.KindIO, "radii: malformed hydrophobicity JSON database: %v", err)
	}
	byRes := make(map[string]float64, len(raw))
	for k, v := range raw {
		byRes[strings.ToUpper(k)] = v
	}
	return &HydrophobicityTable{byRes: byRes, fallback: fallback, hasFallback: hasFallback}, nil
}

// Lookup returns the hydrophobicity value for resName, falling back to the
// table's scalar fallback, or failing with a KindData error.
func (t *HydrophobicityTable) Lookup(resName string) (float64, error) {
	if v, ok := t.byRes[strings.ToUpper(resName)]; ok {
		return v, nil
	}
	if t.hasFallback {
		return t.fallback, nil
	}
	return 0, pp.NewError(pp.KindData, "radii: no hydrophobicity entry for residue %q and no fallback configured", resName)
}
