package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/poreprofile/internal/vec3"
)

// Property 1: partition of unity.
func TestBasisPartitionOfUnity(t *testing.T) {
	params := []float64{0, 1, 2, 3.5, 5, 7, 8}
	knots, err := ClampedInterpolationKnots(params, DefaultDegree)
	require.NoError(t, err)
	n := NumBasisFuncs(len(knots), DefaultDegree)

	rng := rand.New(rand.NewSource(1))
	lo, hi := params[0], params[len(params)-1]
	for i := 0; i < 100; i++ {
		x := lo + rng.Float64()*(hi-lo)
		var sum float64
		for b := 0; b < n; b++ {
			sum += Basis(knots, DefaultDegree, b, x)
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

// Property 2: derivative consistency between the analytic recurrence and a
// centered finite difference.
func TestBasisDerivativeConsistency(t *testing.T) {
	params := []float64{0, 1, 2, 3.5, 5, 7, 8}
	knots, err := ClampedInterpolationKnots(params, DefaultDegree)
	require.NoError(t, err)
	n := NumBasisFuncs(len(knots), DefaultDegree)

	rng := rand.New(rand.NewSource(2))
	lo, hi := params[0]+0.01, params[len(params)-1]-0.01
	const h = 1e-5
	for i := 0; i < 50; i++ {
		x := lo + rng.Float64()*(hi-lo)
		for b := 0; b < n; b++ {
			analytic := BasisDerivative(knots, DefaultDegree, b, 1, x)
			numeric := (Basis(knots, DefaultDegree, b, x+h) - Basis(knots, DefaultDegree, b, x-h)) / (2 * h)
			assert.InDelta(t, analytic, numeric, 1e-4)
		}
	}
}

func TestSplineInterpolatesSamples(t *testing.T) {
	params := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	vals := []float64{0, 2, 1, 4, 3, 5, 2, 1}
	sp, err := FitInterpolating(params, vals, DefaultDegree)
	require.NoError(t, err)
	for i, x := range params {
		assert.InDelta(t, vals[i], sp.Eval(x), 1e-6)
	}
}

// Property 3: arc-length parameterization.
func TestCurveArcLengthParameterization(t *testing.T) {
	pts := make([]vec3.Vec, 0)
	for i := 0; i < 10; i++ {
		a := float64(i) * 0.6
		pts = append(pts, vec3.New(math.Cos(a), math.Sin(a), 0.1*float64(i)))
	}
	curve, arc, err := FitArcLength(pts, DefaultDegree, 1e-8)
	require.NoError(t, err)
	require.Len(t, arc, len(pts))

	// Property 4: interpolation at sample parameters.
	for i, s := range arc {
		got := curve.Eval(s)
		assert.InDelta(t, pts[i][0], got[0], 1e-6)
		assert.InDelta(t, pts[i][1], got[1], 1e-6)
		assert.InDelta(t, pts[i][2], got[2], 1e-6)
	}

	rng := rand.New(rand.NewSource(3))
	lo, hi := arc[0], arc[len(arc)-1]
	for i := 0; i < 100; i++ {
		s := lo + rng.Float64()*(hi-lo)
		assert.InDelta(t, 1.0, curve.Speed(s), 1e-2)
	}
}

func TestSplineLinearExtrapolation(t *testing.T) {
	params := []float64{0, 1, 2, 3}
	vals := []float64{0, 1, 2, 3}
	sp, err := FitInterpolating(params, vals, DefaultDegree)
	require.NoError(t, err)
	// A straight-line interpolant extrapolates straight too.
	assert.InDelta(t, -1.0, sp.Eval(-1), 1e-6)
	assert.InDelta(t, 4.0, sp.Eval(4), 1e-6)
}
