/*
 * kde.go, part of poreprofile.
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

package density

import (
	"math"

	"github.com/rmera/poreprofile/geometry"
)

const (
	defaultEvalCutoff  = 5.0
	defaultMaxEvalDist = 0.05
	defaultBWMaxIter   = 100
	gaussNorm          = 0.3989422804014327 // 1/sqrt(2*pi)
)

func gaussianKernel(u float64) float64 {
	return gaussNorm * math.Exp(-0.5*u*u)
}

// kdeEstimate implements spec.md §4.4's weighted Gaussian KDE: bandwidth
// selection (AMISE with Silverman fallback, when unset), evaluation on a
// padded uniform grid, and a cubic spline fit through (grid, f_hat).
func kdeEstimate(x, weights []float64, mean, sd float64, p Params) (Result, error) {
	h := p.Bandwidth
	if h <= 0 {
		h = amiseBandwidth(x, sd, p.BWMaxIter)
	}
	scale := p.BWScale
	if scale <= 0 {
		scale = 1
	}
	h *= scale

	cutoff := p.EvalCutoff
	if cutoff <= 0 {
		cutoff = defaultEvalCutoff
	}
	maxDist := p.MaxEvalDist
	if maxDist <= 0 {
		maxDist = defaultMaxEvalDist
	}

	xmin, xmax := minMax(x)
	lo := xmin - cutoff*h
	hi := xmax + cutoff*h
	n := int(math.Ceil((hi-lo)/maxDist)) + 1
	if n < 4 {
		n = 4
	}

	grid := make([]float64, n)
	vals := make([]float64, n)
	step := (hi - lo) / float64(n-1)

	totalW := float64(len(x))
	if weights != nil {
		totalW = 0
		for _, w := range weights {
			totalW += w
		}
	}

	for i := 0; i < n; i++ {
		g := lo + float64(i)*step
		grid[i] = g
		var num float64
		if weights != nil {
			for j, xi := range x {
				num += weights[j] * gaussianKernel((g-xi)/h)
			}
			vals[i] = num / (h * totalW)
		} else {
			for _, xi := range x {
				num += gaussianKernel((g - xi) / h)
			}
			vals[i] = num / (h * totalW)
		}
	}

	degree := geometry.DefaultDegree
	if n <= degree {
		degree = n - 1
	}
	sp, err := geometry.FitInterpolating(grid, vals, degree)
	if err != nil {
		return Result{}, err
	}
	return Result{Spline: sp, Bandwidth: h}, nil
}

func minMax(x []float64) (lo, hi float64) {
	lo, hi = x[0], x[0]
	for _, v := range x {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
