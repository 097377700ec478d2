package voronoi

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestFromSites(t *testing.T) {
	sites := []Point{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 0, Y: 100},
		{X: 5000, Y: 5000},
	}

	d := FromSites(DefaultSize, sites)
	assert.Equal(t, 3, d.Len())

	var total float64
	for _, cell := range d.Cells() {
		total += cell.Area.Area()
	}
	assert.InDelta(t, 4e6, total, 1e-3)
}

func TestTryInsert(t *testing.T) {
	d := New(10, CenteredOnFirstSite())
	d, _, err := d.TryInsert(Cell{Site: Point{X: 100, Y: 100}, Colour: HSLA{H: 200, S: 0.5, L: 0.5, A: 1}})
	require.NoError(t, err)

	_, _, err = d.TryInsert(Cell{Site: Point{X: 0, Y: 0}})
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	_, _, err = d.TryInsert(Cell{Site: Point{X: 100, Y: 100}})
	assert.True(t, errors.Is(err, ErrDuplicateSite))

	d, insertion, err := d.TryInsert(Cell{Site: Point{X: 105, Y: 100}})
	require.NoError(t, err)
	assert.Equal(t, Point{X: 100, Y: 100}, insertion.Split)
	assert.Empty(t, insertion.Reclipped)
}
