/*
 * summarystats.go, part of poreprofile.
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

// Package aggregate implements the streaming two-pass aggregation of
// spec.md §4.6: SummaryStats accumulators and the Aggregator that builds
// time-averaged profiles and time series over a common arc-length grid.
package aggregate

import (
	"encoding/json"
	"math"
)

// SummaryStats is a Welford streaming accumulator: count n, running mean,
// M2 (sum of squared deviations, for variance), min, max and sum. No
// library in the example corpus offers an online mean/variance accumulator
// with a "shift" operation (gonum/stat computes mean/variance only in a
// batch pass over a held slice) so this is hand-rolled, in the same spirit
// as the teacher's own small numeric helpers.
type SummaryStats struct {
	n        int64
	mean     float64
	m2       float64
	min, max float64
	sum      float64
}

// NewSummaryStats returns an empty accumulator.
func NewSummaryStats() *SummaryStats {
	return &SummaryStats{min: math.Inf(1), max: math.Inf(-1)}
}

// Add folds one observation into the running statistics.
func (s *SummaryStats) Add(x float64) {
	s.n++
	delta := x - s.mean
	s.mean += delta / float64(s.n)
	delta2 := x - s.mean
	s.m2 += delta * delta2
	s.sum += x
	if x < s.min {
		s.min = x
	}
	if x > s.max {
		s.max = x
	}
}

// AddAll folds a vector of observations, element-wise, into a parallel
// slice of accumulators (spec.md §3's "update multiple").
func AddAll(stats []*SummaryStats, xs []float64) {
	for i, x := range xs {
		stats[i].Add(x)
	}
}

// Shift adds delta to the mean, min and max without replaying the stream;
// the variance (M2) and n are unaffected, since shifting every observation
// by a constant does not change their spread.
func (s *SummaryStats) Shift(delta float64) {
	if s.n == 0 {
		return
	}
	s.mean += delta
	s.min += delta
	s.max += delta
	s.sum += delta * float64(s.n)
}

func (s *SummaryStats) N() int64 { return s.n }
func (s *SummaryStats) Mean() float64 {
	if s.n == 0 {
		return 0
	}
	return s.mean
}
func (s *SummaryStats) Variance() float64 {
	if s.n < 2 {
		return 0
	}
	return s.m2 / float64(s.n-1)
}
func (s *SummaryStats) StdDev() float64 { return math.Sqrt(s.Variance()) }
func (s *SummaryStats) Min() float64 {
	if s.n == 0 {
		return 0
	}
	return s.min
}
func (s *SummaryStats) Max() float64 {
	if s.n == 0 {
		return 0
	}
	return s.max
}
func (s *SummaryStats) Sum() float64 { return s.sum }

// MarshalJSON renders the mean/sd/min/max/n view spec.md §6 names for
// "pathway-level summaries... for every aggregate", since the accumulator
// fields themselves (mean/m2 Welford state) are not the public contract.
func (s *SummaryStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		N      int64   `json:"n"`
		Mean   float64 `json:"mean"`
		StdDev float64 `json:"sd"`
		Min    float64 `json:"min"`
		Max    float64 `json:"max"`
	}{s.N(), s.Mean(), s.StdDev(), s.Min(), s.Max()})
}
