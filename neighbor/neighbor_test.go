package neighbor

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmera/poreprofile/internal/vec3"
)

func samplePoints() []vec3.Vec {
	return []vec3.Vec{
		vec3.New(0, 0, 0),
		vec3.New(1, 0, 0),
		vec3.New(0, 1, 0),
		vec3.New(5, 5, 5),
		vec3.New(0, 0, 1),
	}
}

func TestBruteAndIndexAgree(t *testing.T) {
	pts := samplePoints()
	b := NewBrute(pts)
	ix := NewIndex(pts)

	got := b.Within(vec3.New(0, 0, 0), 1.01)
	want := ix.Within(vec3.New(0, 0, 0), 1.01)
	sort.Ints(got)
	sort.Ints(want)
	assert.Equal(t, got, want)
	assert.ElementsMatch(t, []int{0, 1, 2, 4}, got)
}

func TestWithinEmptyWhenNoNeighbors(t *testing.T) {
	pts := samplePoints()
	b := NewBrute(pts)
	assert.Empty(t, b.Within(vec3.New(100, 100, 100), 1))
}
