package internal

// This contains no actual tests. It is just a helper for testing diagram
// validity.

import (
	"math"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a diagram is valid. The rules are:
// 1. There is exactly one cell per expected site.
// 2. Every cell is convex, counterclockwise, and contains its site.
// 3. The areas of all cells sum to the area of the bounding square.
// 4. Sampled points are strictly inside at most one cell, and inside at least one.
// 5. The cell containing a sampled point belongs to a nearest site.
func AssertValidDiagram(t *testing.T, d *Diagram, sites []Point) {
	t.Helper()
	cells := d.Cells()
	require.Len(t, cells, len(sites), "one cell per site")

	expected := make(PointSet)
	for _, site := range sites {
		expected.Add(site)
	}

	var total float64
	for _, cell := range cells {
		require.True(t, expected.Contains(cell.Site), "unexpected cell %v", cell)
		require.True(t, cell.Area.IsCCW(), "clockwise cell: %s", spew.Sdump(cell.Area))
		require.True(t, cell.Area.IsConvex(), "non-convex cell: %s", spew.Sdump(cell.Area))
		require.True(t, FloatKernel{}.Contains(cell.Area, cell.Site), "cell %v does not contain its site", cell)
		total += cell.Area.Area()
	}
	require.InEpsilon(t, d.Bounds().Area(), total, 1e-7, "cell areas must sum to the bounding square")

	validateDiagramBySampling(t, d, sites, 500)
}

func validateDiagramBySampling(t *testing.T, d *Diagram, sites []Point, samples int) {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	min, max := d.Bounds().Bounds()
	for i := 0; i < samples; i++ {
		p := Point{
			X: min.X + rng.Float64()*(max.X-min.X),
			Y: min.Y + rng.Float64()*(max.Y-min.Y),
		}

		nearest := math.Inf(1)
		for _, site := range sites {
			nearest = math.Min(nearest, site.Distance(p))
		}

		var inside, strictlyInside int
		for _, cell := range d.Cells() {
			if !(FloatKernel{}).Contains(cell.Area, p) {
				continue
			}
			inside++
			if strictlyContains(cell.Area, p) {
				strictlyInside++
			}
			assert.InDelta(t, nearest, cell.Site.Distance(p), 1e-3,
				"point %v lies in the cell of %v, which is not a nearest site", p, cell.Site)
		}
		assert.GreaterOrEqual(t, inside, 1, "point %v is not covered by any cell", p)
		assert.LessOrEqual(t, strictlyInside, 1, "point %v is inside more than one cell", p)
	}
}

func strictlyContains(poly Polygon, p Point) bool {
	for i, vertex := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (Line{vertex, next}).SignedDistance(p) <= Tolerance {
			return false
		}
	}
	return true
}

// Compare polygons as rings of points, ignoring the starting vertex.
func assertSamePolygon(t *testing.T, expected, actual Polygon) {
	t.Helper()
	require.Len(t, actual.Points, len(expected.Points), "vertex count of %v", actual.Points)
	offset := -1
	for i, p := range actual.Points {
		if p.Equal(expected.Points[0]) {
			offset = i
			break
		}
	}
	require.NotEqual(t, -1, offset, "%v does not contain %v", actual.Points, expected.Points[0])
	for i, p := range expected.Points {
		q := actual.Points[CircularIndex(i+offset, len(actual.Points))]
		assert.InDelta(t, p.X, q.X, Tolerance, "x of vertex %d", i)
		assert.InDelta(t, p.Y, q.Y, Tolerance, "y of vertex %d", i)
	}
}
