package optim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func negDistFromOrigin(x []float64) float64 {
	return -math.Hypot(x[0]-1, x[1]+2)
}

// Property 8: annealing determinism.
func TestAnnealDeterminism(t *testing.T) {
	p := AnnealParams{Seed: 42, MaxIter: 200, InitTemp: 5, CoolingFactor: 0.95, StepLength: 0.3}
	x0 := []float64{0, 0}

	best1, ok1 := Anneal(negDistFromOrigin, x0, p)
	best2, ok2 := Anneal(negDistFromOrigin, x0, p)

	require.Equal(t, ok1, ok2)
	assert.Equal(t, best1.X, best2.X)
	assert.Equal(t, best1.Cost, best2.Cost)
}

func TestMaximizeFindsPeak(t *testing.T) {
	p := Params{
		Anneal:  AnnealParams{Seed: 7, MaxIter: 500, InitTemp: 2, CoolingFactor: 0.97, StepLength: 0.5},
		Simplex: SimplexParams{MaxIter: 200, InitShift: 0.5},
	}
	best, ok := Maximize(negDistFromOrigin, []float64{5, 5}, p)
	require.True(t, ok)
	assert.InDelta(t, 1.0, best.X[0], 1e-2)
	assert.InDelta(t, -2.0, best.X[1], 1e-2)
	assert.InDelta(t, 0.0, best.Cost, 1e-2)
}

func TestNelderMeadFromZeroAnnealIter(t *testing.T) {
	// sa-max-iter = 0 should not crash; NM still runs from x0 (spec.md §9
	// resolved open question on combined defaults).
	p := Params{
		Anneal:  AnnealParams{Seed: 1, MaxIter: 0, InitTemp: 1, CoolingFactor: 0.9, StepLength: 0.1},
		Simplex: SimplexParams{MaxIter: 300, InitShift: 0.5},
	}
	best, _ := Maximize(negDistFromOrigin, []float64{5, 5}, p)
	assert.InDelta(t, 1.0, best.X[0], 5e-2)
}
