package pdb

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pp "github.com/rmera/poreprofile"
	"github.com/rmera/poreprofile/internal/vec3"
)

func TestWriteProducesOneRecordPerAtom(t *testing.T) {
	atoms := []pp.Particle{
		{Index: 1, ResID: 1, ResName: "ALA", AtomName: "CA", Chain: "A", Pos: vec3.Vec{1, 2, 3}},
		{Index: 2, ResID: 1, ResName: "ALA", AtomName: "CB", Chain: "A", Pos: vec3.Vec{1.5, 2.5, 3.5}},
		{Index: 3, ResID: 2, ResName: "GLY", AtomName: "CA", Chain: "A", Pos: vec3.Vec{4, 5, 6}},
	}
	bfactors := map[int]float64{1: 0.75, 2: 0.0}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, atoms, bfactors))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	var atomLines []string
	for _, l := range lines {
		if strings.HasPrefix(l, "ATOM") {
			atomLines = append(atomLines, l)
		}
	}
	require.Len(t, atomLines, 3)
	assert.Contains(t, atomLines[0], "0.75")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "END"))
}

func TestWriteMissingResidueDefaultsToZeroBFactor(t *testing.T) {
	atoms := []pp.Particle{
		{Index: 1, ResID: 99, ResName: "SOL", AtomName: "OW", Chain: "W", Pos: vec3.Vec{0, 0, 0}},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, atoms, map[int]float64{}))
	assert.Contains(t, buf.String(), "ATOM")
}

func TestElementGuessStripsLeadingDigits(t *testing.T) {
	assert.Equal(t, "HB", elementGuess("1HB1"))
	assert.Equal(t, "CA", elementGuess("CA"))
	assert.Equal(t, "H", elementGuess("H"))
}
