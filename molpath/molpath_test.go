package molpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pp "github.com/rmera/poreprofile"
	"github.com/rmera/poreprofile/internal/vec3"
)

// straightLinePath builds the E4 scenario of spec.md §8: samples at
// (k,0,0) for k in 0..9, radius 1 everywhere.
func straightLinePath(t *testing.T) *MolecularPath {
	samples := make([]pp.ProbeSample, 10)
	for k := 0; k < 10; k++ {
		samples[k] = pp.ProbeSample{Centre: vec3.New(float64(k), 0, 0), Radius: 1, S: float64(k)}
	}
	mp, err := New(samples, 3, 1e-6)
	require.NoError(t, err)
	return mp
}

func TestFromDescriptorsRoundTripsEvalAndFrenetFrame(t *testing.T) {
	mp := straightLinePath(t)

	lo, hi := mp.Domain()
	ctrlX, ctrlY, ctrlZ := mp.CentreLineCtrlPoints()
	rebuilt, err := FromDescriptors(
		pp.CentreLineDescriptor{Knots: mp.CentreLineUniqueKnots(), CtrlX: ctrlX, CtrlY: ctrlY, CtrlZ: ctrlZ},
		pp.SplineDescriptor{Knots: mp.PoreRadiusUniqueKnots(), Ctrl: mp.PoreRadiusCtrlPoints()},
		3,
	)
	require.NoError(t, err)

	rLo, rHi := rebuilt.Domain()
	assert.InDelta(t, lo, rLo, 1e-9)
	assert.InDelta(t, hi, rHi, 1e-9)

	for _, s := range []float64{lo, (lo + hi) / 2, hi} {
		assert.InDelta(t, mp.Radius(s), rebuilt.Radius(s), 1e-9)
		orig := mp.Centre(s)
		got := rebuilt.Centre(s)
		assert.InDelta(t, orig[0], got[0], 1e-9)
		assert.InDelta(t, orig[1], got[1], 1e-9)
		assert.InDelta(t, orig[2], got[2], 1e-9)
	}
}

func TestFromDescriptorsRejectsMismatchedAxisLengths(t *testing.T) {
	_, err := FromDescriptors(
		pp.CentreLineDescriptor{Knots: []float64{0, 1}, CtrlX: []float64{1, 2}, CtrlY: []float64{1}, CtrlZ: []float64{1, 2}},
		pp.SplineDescriptor{Knots: []float64{0, 1}, Ctrl: []float64{1, 1}},
		1,
	)
	assert.Error(t, err)
}

func TestMolecularPathLengthAndVolume(t *testing.T) {
	mp := straightLinePath(t)
	assert.InDelta(t, 9.0, mp.Length(), 1e-6)
	assert.InDelta(t, 9*math.Pi, mp.Volume(), 1e-3)
}

func TestMolecularPathMinRadius(t *testing.T) {
	mp := straightLinePath(t)
	lo, hi := mp.Domain()
	_, rAt := mp.MinRadius(lo, hi, 0.1)
	assert.InDelta(t, 1.0, rAt, 1e-6)
}

func TestMolecularPathMapPositionMatchesE5(t *testing.T) {
	mp := straightLinePath(t)
	mapped, err := mp.MapPositions([]vec3.Vec{vec3.New(0.5, 0.3, 0)}, MapParams{MapTol: 1e-9, ExtrapDist: 0})
	require.NoError(t, err)
	require.Len(t, mapped, 1)

	assert.InDelta(t, 0.5, mapped[0].S, 1e-6)
	assert.InDelta(t, 0.09, mapped[0].Rho2, 1e-6)

	lo, hi := mp.Domain()
	inside := mp.CheckIfInside(mapped, 0, lo, hi)
	assert.True(t, inside[0])
}

func TestInterpolationAtSampleParameters(t *testing.T) {
	mp := straightLinePath(t)
	for k := 0; k < 10; k++ {
		s := mp.arcParams[k]
		assert.InDelta(t, 1.0, mp.Radius(s), 1e-9)
		got := mp.Centre(s)
		want := vec3.New(float64(k), 0, 0)
		assert.InDelta(t, want[0], got[0], 1e-9)
		assert.InDelta(t, want[1], got[1], 1e-9)
		assert.InDelta(t, want[2], got[2], 1e-9)
	}
}

func TestContainmentMonotonicityInMargin(t *testing.T) {
	mp := straightLinePath(t)
	mapped, err := mp.MapPositions([]vec3.Vec{vec3.New(4, 1.5, 0)}, MapParams{MapTol: 1e-9})
	require.NoError(t, err)
	lo, hi := mp.Domain()

	smallMargin := mp.CheckIfInside(mapped, 0.1, lo, hi)
	largeMargin := mp.CheckIfInside(mapped, 5.0, lo, hi)
	assert.False(t, smallMargin[0])
	assert.True(t, largeMargin[0])
}

func TestNewRejectsDegenerateSequences(t *testing.T) {
	_, err := New([]pp.ProbeSample{{}, {}, {}}, 3, 1e-6)
	require.Error(t, err)

	samples := []pp.ProbeSample{
		{Centre: vec3.New(0, 0, 0), Radius: 1, S: 0},
		{Centre: vec3.New(1, 0, 0), Radius: 1, S: 1},
		{Centre: vec3.New(2, 0, 0), Radius: 1, S: 0.5},
		{Centre: vec3.New(3, 0, 0), Radius: 1, S: 3},
	}
	_, err = New(samples, 3, 1e-6)
	require.Error(t, err)
}

func TestMapSelectionOmitsResiduesOutsideExtrapDist(t *testing.T) {
	mp := straightLinePath(t)
	residues := []pp.Residue{
		{ID: 1, Atoms: []pp.Particle{{Pos: vec3.New(4, 0.1, 0)}}},
		{ID: 2, Atoms: []pp.Particle{{Pos: vec3.New(50, 0, 0)}}},
	}
	mapped, err := mp.MapSelection(residues, false, MapParams{MapTol: 1e-9, ExtrapDist: 1.0})
	require.NoError(t, err)
	_, ok1 := mapped[1]
	_, ok2 := mapped[2]
	assert.True(t, ok1)
	assert.False(t, ok2)
}
