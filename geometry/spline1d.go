/*
 * spline1d.go, part of poreprofile.
 *
 * A degree-3 (by default) interpolating B-spline in one dependent variable,
 * fit by collocation (Piegl & Tiller §9.2.1) and evaluated/differentiated
 * via the Cox-de Boor recurrence of bspline.go. This is the "Radius R(s)"
 * curve of spec.md §3, and also the per-axis building block for the
 * vector-valued centre-line curve in curve3.go.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package geometry

import (
	"gonum.org/v1/gonum/mat"

	pp "github.com/rmera/poreprofile"
)

const DefaultDegree = 3

// Spline1D is a scalar-valued interpolating B-spline curve.
type Spline1D struct {
	knots  []float64
	ctrl   []float64
	degree int
}

// FitInterpolating builds a degree-d B-spline that interpolates values[k]
// at params[k] for every k. params must be strictly increasing and have at
// least degree+1 entries.
func FitInterpolating(params, values []float64, degree int) (*Spline1D, error) {
	if len(params) != len(values) {
		return nil, pp.NewError(pp.KindData, "geometry: FitInterpolating requires len(params) == len(values)")
	}
	for _, v := range values {
		if v != v { // NaN
			return nil, pp.NewError(pp.KindData, "geometry: NaN value given to FitInterpolating")
		}
	}
	knots, err := ClampedInterpolationKnots(params, degree)
	if err != nil {
		return nil, err
	}
	n := len(params)
	A := mat.NewDense(n, n, nil)
	for row, x := range params {
		for col := 0; col < n; col++ {
			A.Set(row, col, Basis(knots, degree, col, x))
		}
	}
	b := mat.NewVecDense(n, values)
	var ctrl mat.VecDense
	if err := ctrl.SolveVec(A, b); err != nil {
		return nil, pp.NewError(pp.KindNumeric, "geometry: spline collocation system is singular: %v", err)
	}
	return &Spline1D{knots: knots, ctrl: ctrl.RawVector().Data, degree: degree}, nil
}

// Domain returns the parameter interval [lo, hi] over which this spline
// interpolates; outside it Eval extrapolates linearly.
func (s *Spline1D) Domain() (lo, hi float64) {
	return s.knots[s.degree], s.knots[len(s.knots)-1-s.degree]
}

// Eval evaluates the spline at x, linearly extrapolating from the boundary
// value and derivative when x falls outside Domain() (spec.md §4.3,
// "radius(s) evaluates R(s) with linear extrapolation outside [s_lo,s_hi]").
func (s *Spline1D) Eval(x float64) float64 {
	lo, hi := s.Domain()
	switch {
	case x < lo:
		return s.evalClamped(lo) + (x-lo)*s.Deriv(lo, 1)
	case x > hi:
		return s.evalClamped(hi) + (x-hi)*s.Deriv(hi, 1)
	default:
		return s.evalClamped(x)
	}
}

func (s *Spline1D) evalClamped(x float64) float64 {
	var sum float64
	for i, c := range s.ctrl {
		sum += c * Basis(s.knots, s.degree, i, x)
	}
	return sum
}

// Deriv evaluates the `order`-th derivative at x, clamped to the domain
// boundary for extrapolation (the extrapolated region is linear, so any
// order-2+ derivative there is exactly zero and order 1 is the boundary
// slope).
func (s *Spline1D) Deriv(x float64, order int) float64 {
	lo, hi := s.Domain()
	if x < lo {
		x = lo
	} else if x > hi {
		x = hi
	} else {
		return s.derivClamped(x, order)
	}
	if order == 1 {
		return s.derivClamped(x, 1)
	}
	if order == 0 {
		return s.Eval(x)
	}
	return 0
}

func (s *Spline1D) derivClamped(x float64, order int) float64 {
	var sum float64
	for i, c := range s.ctrl {
		sum += c * BasisDerivative(s.knots, s.degree, i, order, x)
	}
	return sum
}

// Knots returns the full knot vector (size n+degree+1).
func (s *Spline1D) Knots() []float64 { return s.knots }

// UniqueKnots returns the distinct knot values, for composite integration
// and serialization.
func (s *Spline1D) UniqueKnots() []float64 { return UniqueKnots(s.knots) }

// CtrlPoints returns the control-point values, for serialization.
func (s *Spline1D) CtrlPoints() []float64 { return append([]float64(nil), s.ctrl...) }

func (s *Spline1D) Degree() int { return s.degree }

// ShiftCtrl adds delta to every control point, which by the B-spline
// partition-of-unity property (testable property 1) shifts the whole curve
// by delta without needing to refit: Sum_i (c_i+delta)*B_i(x) = C(x)+delta.
func (s *Spline1D) ShiftCtrl(delta float64) {
	for i := range s.ctrl {
		s.ctrl[i] += delta
	}
}

// FromDescriptor reconstructs a Spline1D from its serialized unique knots
// and control points (the wire format UniqueKnots/CtrlPoints produce), as
// the aggregator does per spec.md §4.6 ("reconstruct the radius spline").
// The unique knots are expanded back into the full clamped knot vector
// ExpandClampedKnots is the inverse of.
func FromDescriptor(uniqueKnots, ctrl []float64, degree int) *Spline1D {
	return &Spline1D{knots: ExpandClampedKnots(uniqueKnots, degree), ctrl: ctrl, degree: degree}
}
