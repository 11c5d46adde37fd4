/*
 * anneal.go, part of poreprofile.
 *
 * Isotropic simulated annealing. Grounded on
 * original_source/src/optim/simulated_annealing_module.cpp's
 * annealIsotropic/cool/generateCandidateStateIsotropic/acceptCandidateState
 * state machine, translated from the mutable-object style of the original
 * into a value-returning Go type per SPEC_FULL.md's "replace global mutable
 * state with an explicit per-component configuration" design note.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package optim

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// AnnealParams configures the simulated-annealing phase (spec.md §6
// sa-seed/sa-max-iter/sa-init-temp/sa-cooling-fac/sa-step).
type AnnealParams struct {
	Seed          int64
	MaxIter       int
	InitTemp      float64
	CoolingFactor float64 // in (0,1)
	StepLength    float64 // isotropic step length factor, sigma
}

// Anneal performs isotropic simulated annealing maximizing obj, starting
// from x0. It returns the best point found and whether its cost is finite
// (true when x0 itself evaluates finitely or a finite-valued candidate was
// accepted); per spec.md §4.2, a caller should treat a
// false ok (or the NegInf sentinel cost) as a failed probe step.
//
// Determinism: for identical params and obj, Anneal with the same Seed
// produces an identical sequence of candidate/accept decisions, since the
// only randomness is drawn from a rand.Source seeded exactly once here.
func Anneal(obj ObjectiveFunc, x0 []float64, p AnnealParams) (best Point, ok bool) {
	src := rand.New(rand.NewSource(uint64(p.Seed)))
	step := distuv.Uniform{Min: -p.StepLength * math.Sqrt(3), Max: p.StepLength * math.Sqrt(3), Src: src}
	accept := distuv.Uniform{Min: 0, Max: 1, Src: src}

	crnt := Point{X: append([]float64(nil), x0...)}
	crnt.Cost = obj(crnt.X)
	bst := clonePoint(crnt)
	ok = isFinite(crnt.Cost)

	temp := p.InitTemp
	cand := make([]float64, len(x0))
	for iter := 0; iter < p.MaxIter; iter++ {
		for i := range cand {
			cand[i] = crnt.X[i] + step.Rand()
		}
		candCost := obj(cand)

		if acceptCandidate(crnt.Cost, candCost, temp, accept.Rand()) {
			crnt = Point{X: append([]float64(nil), cand...), Cost: candCost}
			if isFinite(candCost) && (!ok || candCost > bst.Cost) {
				bst = clonePoint(crnt)
				ok = true
			}
		}
		temp *= p.CoolingFactor
	}
	return bst, ok
}

// acceptCandidate implements P(accept) = min(1, exp((cand-crnt)/T)),
// compared against a uniform draw r on [0,1).
func acceptCandidate(crntCost, candCost, temp, r float64) bool {
	if temp <= 0 {
		return candCost > crntCost
	}
	accProb := math.Min(math.Exp((candCost-crntCost)/temp), 1.0)
	return r < accProb
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
