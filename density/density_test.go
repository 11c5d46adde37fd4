package density

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKDEMassIntegratesToOne(t *testing.T) {
	src := rand.New(rand.NewSource(7))
	x := make([]float64, 500)
	for i := range x {
		x[i] = src.NormFloat64()
	}
	res, err := Estimate(x, Params{Method: Kernel})
	require.NoError(t, err)
	require.False(t, res.Degenerate)

	lo, hi := res.Spline.Domain()
	const steps = 2000
	step := (hi - lo) / steps
	var mass float64
	for i := 0; i < steps; i++ {
		a := lo + float64(i)*step
		b := a + step
		mass += 0.5 * (res.Spline.Eval(a) + res.Spline.Eval(b)) * step
	}
	assert.InDelta(t, 1.0, mass, 1e-3)
}

func TestAMISEBandwidthNearSilverman(t *testing.T) {
	src := rand.New(rand.NewSource(11))
	x := make([]float64, 1000)
	for i := range x {
		x[i] = src.NormFloat64()
	}
	sd := 1.0
	silverman := silvermanBandwidth(sd, len(x))
	amise := amiseBandwidth(x, sd, 0)

	ratio := amise / silverman
	assert.Greater(t, ratio, 0.5)
	assert.Less(t, ratio, 2.0)
}

func TestPeakDensityMatchesE3(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	x := make([]float64, 1000)
	for i := range x {
		x[i] = src.NormFloat64()
	}
	res, err := Estimate(x, Params{Method: Kernel})
	require.NoError(t, err)

	lo, hi := res.Spline.Domain()
	peak := 0.0
	const steps = 2000
	for i := 0; i <= steps; i++ {
		s := lo + (hi-lo)*float64(i)/steps
		if v := res.Spline.Eval(s); v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 0.30)
	assert.Less(t, peak, 0.50)
}

func TestDegenerateInputReturnsZeroSpline(t *testing.T) {
	res, err := Estimate([]float64{1}, Params{Method: Kernel})
	require.NoError(t, err)
	assert.True(t, res.Degenerate)
	assert.Equal(t, 0.0, res.Spline.Eval(0.5))

	res2, err := Estimate([]float64{3, 3, 3}, Params{Method: Kernel})
	require.NoError(t, err)
	assert.True(t, res2.Degenerate)
}

func TestHistogramEstimateNonNegative(t *testing.T) {
	src := rand.New(rand.NewSource(3))
	x := make([]float64, 200)
	for i := range x {
		x[i] = src.NormFloat64()
	}
	res, err := Estimate(x, Params{Method: Histogram, HistBinWidth: 0.25})
	require.NoError(t, err)
	lo, hi := res.Spline.Domain()
	for s := lo; s <= hi; s += 0.1 {
		assert.GreaterOrEqual(t, res.Spline.Eval(s), -1e-9)
	}
}

func TestWeightedKDEDiffersFromUnweighted(t *testing.T) {
	x := []float64{-2, -1, 0, 1, 2, 3, 4, 5, 6, 7}
	weights := make([]float64, len(x))
	for i := range weights {
		weights[i] = 1
	}
	weights[len(weights)-1] = 20 // heavily weight the rightmost point

	unweighted, err := EstimateWeighted(x, nil, Params{Method: Kernel, Bandwidth: 1.0})
	require.NoError(t, err)
	weighted, err := EstimateWeighted(x, weights, Params{Method: Kernel, Bandwidth: 1.0})
	require.NoError(t, err)

	assert.NotEqual(t, unweighted.Spline.Eval(6), weighted.Spline.Eval(6))
	assert.False(t, math.IsNaN(weighted.Spline.Eval(6)))
}
