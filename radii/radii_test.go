package radii

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVdWTableResolvesByElementGuess(t *testing.T) {
	table := DefaultVdWTable(0, false)
	v, err := table.Lookup("ALA", "CA")
	require.NoError(t, err)
	assert.InDelta(t, 1.70, v, 1e-9)

	v, err = table.Lookup("ALA", "1HB1")
	require.NoError(t, err)
	assert.InDelta(t, 1.10, v, 1e-9)
}

func TestLookupMissWithNoFallbackErrors(t *testing.T) {
	table := NewTable(0, false)
	_, err := table.Lookup("XXX", "YYY")
	require.Error(t, err)
}

func TestLookupMissWithFallback(t *testing.T) {
	table := NewTable(1.5, true)
	v, err := table.Lookup("XXX", "YYY")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
}

func TestLoadJSONOverride(t *testing.T) {
	r := strings.NewReader(`{"LIG": {"C1": 2.5}}`)
	table, err := LoadJSON(r, 0, false)
	require.NoError(t, err)
	v, err := table.Lookup("LIG", "C1")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

func TestDefaultHydrophobicityTable(t *testing.T) {
	table := DefaultHydrophobicityTable(0, false)
	v, err := table.Lookup("ILE")
	require.NoError(t, err)
	assert.InDelta(t, 4.5, v, 1e-9)

	_, err = table.Lookup("UNK")
	require.Error(t, err)
}
