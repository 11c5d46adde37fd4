/*
 * histogram.go, part of poreprofile.
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

const defaultHistBinWidth = 0.1

// histogramEstimate implements spec.md §4.4's histogram density: bin width
// h, bin count k = ceil((max-min)/h), density = count/(n*h), rendered as a
// step function and converted to a linear spline over the bin centres.
func histogramEstimate(x []float64, p Params) (Result, error) {
	h := p.HistBinWidth
	if h <= 0 {
		h = defaultHistBinWidth
	}
	xmin, xmax := minMax(x)
	span := xmax - xmin
	if span <= 0 {
		span = h
	}
	k := int(math.Ceil(span / h))
	if k < 1 {
		k = 1
	}

	counts := make([]int, k)
	for _, v := range x {
		bin := int((v - xmin) / h)
		if bin >= k {
			bin = k - 1
		}
		if bin < 0 {
			bin = 0
		}
		counts[bin]++
	}

	n := float64(len(x))
	// pad with one zero-density bin on each side so the linear spline falls
	// to zero at the edges rather than extrapolating a flat plateau.
	params := make([]float64, k+2)
	values := make([]float64, k+2)
	params[0] = xmin - h/2
	values[0] = 0
	for i := 0; i < k; i++ {
		params[i+1] = xmin + (float64(i)+0.5)*h
		values[i+1] = float64(counts[i]) / (n * h)
	}
	params[k+1] = xmin + span + h/2
	values[k+1] = 0

	sp, err := geometry.FitInterpolating(params, values, 1)
	if err != nil {
		return Result{}, err
	}
	return Result{Spline: sp, Bandwidth: h}, nil
}
